// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (engine CLI, Docker API, dialogs, notifications).
package out

import (
	"context"

	"github.com/bnema/vackup/internal/domain"
)

// EngineRunner executes an engine CLI subcommand and captures its output.
// A non-zero exit or a launch failure is returned as *domain.EngineError.
type EngineRunner interface {
	Exec(ctx context.Context, subcommand string, args ...string) (*domain.CommandResult, error)
}
