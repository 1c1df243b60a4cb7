package options

import (
	"github.com/spf13/cobra"
)

// FocusOptions captures focus-area filtering flags.
type FocusOptions struct {
	Focus string
}

func AddFocusArgs(cmd *cobra.Command, o *FocusOptions) {
	cmd.Flags().StringVarP(&o.Focus, "focus", "f", "",
		"Filter entries by focus area.")
}
