// Package get provides the runner logic for listing diary entries.
package get

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/entry"
	"tableflip.dev/pup/pkg/printers"
)

// Get lists diary entries, optionally filtered by focus area.
type Get struct {
	Focus  string
	ShowID bool

	Store *diary.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	if n.Focus == "" {
		n.Store.Render()
		return nil
	}

	all := n.Store.Entries()
	filtered := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if strings.EqualFold(e.Focus, n.Focus) {
			filtered = append(filtered, e)
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(n.Focus)
	pp.Diary(filtered...)
	return nil
}
