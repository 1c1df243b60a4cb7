package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pup/pkg/commands/options"
	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all diary entries",
		Example: `
pup clear
pup clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm := func(prompt string) bool {
				if co.Yes {
					return true
				}
				return promptYesNo(cmd, prompt)
			}
			s, err := loadStore(false, diary.WithConfirm(confirm))
			if err != nil {
				return err
			}
			c := clear.Clear{
				Store: s,
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
