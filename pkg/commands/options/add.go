// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO = "2006-01-02"
)

// AddOptions captures flags for recording a diary entry.
type AddOptions struct {
	Text     string
	Focus    string
	OnString string
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the session date, example: --on="2024-05-01". Defaults to today.`)
	cmd.Flags().StringVarP(&o.Focus, "focus", "f", "",
		"Focus area for the session, example: leash training.")
}

// GetOn returns the ISO date for the entry, defaulting to today.
func (o *AddOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return time.Now().Format(layoutISO), nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return "", err
	}
	return t.Format(layoutISO), nil
}
