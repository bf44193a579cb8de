package out

import (
	"context"

	"github.com/bnema/vackup/internal/domain"
)

// DirectoryPicker asks the user for a single directory.
// Cancellation is reported through DirectorySelection.Canceled, not as an error.
type DirectoryPicker interface {
	PickDirectory(ctx context.Context) (domain.DirectorySelection, error)
}
