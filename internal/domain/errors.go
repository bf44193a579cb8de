package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Volume errors
	ErrVolumeNotFound   = errors.New("volume not found")
	ErrInvalidVolume    = errors.New("invalid volume name")
	ErrVolumeBusy       = errors.New("another operation is running on this volume")
	ErrInvalidImage     = errors.New("invalid image reference")
	ErrArchiveNotFound  = errors.New("archive not found")
	ErrInvalidOperation = errors.New("invalid operation")

	// Export errors
	ErrNoExportPath   = errors.New("no export path selected")
	ErrExportInFlight = errors.New("an export is already running")
	ErrExportFailed   = errors.New("export failed")
	ErrImportFailed   = errors.New("import failed")
	ErrLoadFailed     = errors.New("load failed")

	// Engine errors
	ErrEngineStderr      = errors.New("engine reported an error")
	ErrEngineUnavailable = errors.New("container engine is not available")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
