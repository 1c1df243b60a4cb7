package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pup/pkg/checklist"
	"tableflip.dev/pup/pkg/kv"
	"tableflip.dev/pup/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	var id string

	long := strings.Builder{}
	long.WriteString("Toggle a supply kit item. Items:\n\n")

	validArgs := make([]string, 0)
	for _, item := range checklist.Catalog() {
		long.WriteString(fmt.Sprintf("%s: %s\n", item.ID, item.Label))
		validArgs = append(validArgs, item.ID)
	}

	cmd := &cobra.Command{
		Use:     "check [item]",
		Aliases: []string{"uncheck"},
		Short:   "Toggle a supply kit item",
		Long:    long.String(),
		Example: `
pup check leash
pup check treat-pouch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item id")
			}
			id = args[0]

			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := kv.Open(nil)
			if err != nil {
				return err
			}
			c := check.Check{
				ID:        id,
				Selection: checklist.NewSelection(backend),
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
