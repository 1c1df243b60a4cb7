// Package kit provides the runner logic for viewing the supply checklist.
package kit

import (
	"context"
	"errors"

	"tableflip.dev/pup/pkg/checklist"
	"tableflip.dev/pup/pkg/printers"
)

// Kit prints the supply checklist.
type Kit struct {
	Selection *checklist.Selection
}

func (n *Kit) Do(ctx context.Context) error {
	if n.Selection == nil {
		return errors.New("can not list the kit, no selection")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Supply Kit")
	pp.Checklist(n.Selection)
	return nil
}
