package out

import (
	"context"

	"github.com/bnema/vackup/internal/domain"
)

// ContainerRuntime defines the container operations performed through the engine API.
type ContainerRuntime interface {
	// Runtime information
	Ping(ctx context.Context) error

	// Container inspection
	ContainersForVolume(ctx context.Context, volumeName string) ([]domain.Container, error)

	// Container lifecycle
	StopContainer(ctx context.Context, containerID string) error
	StartContainer(ctx context.Context, containerID string) error

	// RunHelper runs a container to completion and removes it.
	RunHelper(ctx context.Context, spec domain.HelperSpec) (*domain.HelperResult, error)
}
