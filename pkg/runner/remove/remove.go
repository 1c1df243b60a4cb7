// Package remove provides the runner logic for deleting a diary entry.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/pup/pkg/diary"
)

// Remove deletes a diary entry by id. Unknown ids are a no-op.
type Remove struct {
	ID string

	Store *diary.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	return n.Store.Remove(n.ID)
}
