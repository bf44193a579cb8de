// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/vackup/internal/domain"
)

// VolumeService defines the contract for volume listing and archiving operations.
// Every method reports its own failures through the configured notifier; the
// returned error is for control flow and must not be notified again.
type VolumeService interface {
	// ListVolumes returns the engine volumes sorted by name.
	ListVolumes(ctx context.Context) ([]domain.Volume, error)

	// ContainersForVolume returns the newline-joined names of containers
	// referencing the volume. The boolean is false when the lookup failed.
	ContainersForVolume(ctx context.Context, volumeName string) (string, bool)

	// ResolveContainers runs one lookup per volume concurrently and merges the results.
	ResolveContainers(ctx context.Context, volumes []domain.Volume) domain.ContainerIndex

	// Export archives the volume into <exportPath>/<volume>.tar.gz.
	Export(ctx context.Context, volumeName, exportPath string) error

	// Import restores a previously exported archive into the volume.
	Import(ctx context.Context, volumeName, archivePath string) error

	// LoadFromImage replaces the volume content with an image's /volume-data.
	LoadFromImage(ctx context.Context, volumeName, image string) error
}
