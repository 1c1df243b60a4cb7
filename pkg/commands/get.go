package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pup/pkg/commands/options"
	"tableflip.dev/pup/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FocusOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "log"},
		Short:   "List diary entries, most recent first",
		Example: `
pup get
pup get --focus "leash training"
pup get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(io.ShowID)
			if err != nil {
				return err
			}
			g := get.Get{
				Focus:  fo.Focus,
				ShowID: io.ShowID,
				Store:  s,
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFocusArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
