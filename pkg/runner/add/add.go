// Package add provides the runner logic for recording a diary entry.
package add

import (
	"context"
	"errors"

	"tableflip.dev/pup/pkg/diary"
)

// Add records a new training session in the diary.
type Add struct {
	Date  string
	Focus string
	Text  string

	Store *diary.Store
}

// Do validates and stores the entry; the store re-renders on success.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	_, err := n.Store.Add(n.Date, n.Focus, n.Text)
	return err
}
