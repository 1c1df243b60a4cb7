// Package clear provides the runner logic for emptying the diary.
package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/pup/pkg/diary"
)

// Clear empties the diary once the store's confirmation guard approves.
type Clear struct {
	Store *diary.Store
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}
	cleared, err := n.Store.Clear()
	if err != nil {
		return err
	}
	if !cleared {
		fmt.Println("aborted")
	}
	return nil
}
