package dialog

import (
	"context"

	"github.com/bnema/vackup/internal/domain"
)

// Static is a picker that always answers with a fixed directory. An empty
// Static behaves like a canceled dialog.
type Static string

// PickDirectory returns the fixed directory.
func (s Static) PickDirectory(_ context.Context) (domain.DirectorySelection, error) {
	if s == "" {
		return domain.DirectorySelection{Canceled: true}, nil
	}
	return domain.DirectorySelection{Paths: []string{string(s)}}, nil
}
