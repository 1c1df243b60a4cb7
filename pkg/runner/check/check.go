// Package check provides the runner logic for toggling supply kit items.
package check

import (
	"context"
	"errors"

	"tableflip.dev/pup/pkg/checklist"
	"tableflip.dev/pup/pkg/printers"
)

// Check toggles a supply kit item and reprints the checklist.
type Check struct {
	ID string

	Selection *checklist.Selection
}

func (n *Check) Do(ctx context.Context) error {
	if n.Selection == nil {
		return errors.New("can not check, no selection")
	}
	if _, err := n.Selection.Toggle(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Supply Kit")
	pp.Checklist(n.Selection)
	return nil
}
