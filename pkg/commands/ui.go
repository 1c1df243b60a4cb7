package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/kv"
	"tableflip.dev/pup/pkg/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the diary interactively",
		Example: `
pup ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := kv.Open(nil)
			if err != nil {
				return err
			}
			// The UI is the display surface; no terminal renderer.
			s := diary.New(backend, nil)
			p := tea.NewProgram(ui.New(s), tea.WithAltScreen())
			_, err = p.Run()
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
