package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pup/pkg/checklist"
	"tableflip.dev/pup/pkg/kv"
	"tableflip.dev/pup/pkg/runner/kit"
)

func addKit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "kit",
		Aliases: []string{"checklist"},
		Short:   "Show the supply kit checklist",
		Example: `
pup kit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := kv.Open(nil)
			if err != nil {
				return err
			}
			k := kit.Kit{
				Selection: checklist.NewSelection(backend),
			}
			err = k.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
