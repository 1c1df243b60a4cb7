package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pup/pkg/commands/options"
	"tableflip.dev/pup/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"note"},
		Short:   "Record a training session",
		Example: `
pup add walked nicely past the mailbox --focus "leash training"
pup add crate nap 40 min --on 2024-05-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires note text")
			}
			ao.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := ao.GetOn()
			if err != nil {
				return err
			}
			s, err := loadStore(false)
			if err != nil {
				return err
			}
			a := add.Add{
				Date:  date,
				Focus: ao.Focus,
				Text:  ao.Text,
				Store: s,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, ao)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
