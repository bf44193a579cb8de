// Package volumes implements the volume listing and archiving use cases.
package volumes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
)

// Helper container defaults.
const (
	DefaultHelperImage = "busybox"
	DefaultVolumeMount = "/vackup-volume"
	DefaultExportMount = "/vackup"

	// imageDataPath is where images produced for volume loading keep their payload.
	imageDataPath = "/volume-data"
)

var volumeNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Options configures the helper container used for export and import.
type Options struct {
	HelperImage string
	VolumeMount string
	ExportMount string
}

// DefaultOptions returns the options matching the archive layout produced by Export.
func DefaultOptions() Options {
	return Options{
		HelperImage: DefaultHelperImage,
		VolumeMount: DefaultVolumeMount,
		ExportMount: DefaultExportMount,
	}
}

// Service implements in.VolumeService.
type Service struct {
	engine   out.EngineRunner
	runtime  out.ContainerRuntime
	notifier out.Notifier
	opts     Options
	log      zerolog.Logger
}

// NewService creates a volume service. runtime may be nil, in which case
// Import and LoadFromImage report domain.ErrEngineUnavailable.
func NewService(
	engine out.EngineRunner,
	runtime out.ContainerRuntime,
	notifier out.Notifier,
	opts Options,
	log zerolog.Logger,
) *Service {
	if opts.HelperImage == "" {
		opts.HelperImage = DefaultHelperImage
	}
	if opts.VolumeMount == "" {
		opts.VolumeMount = DefaultVolumeMount
	}
	if opts.ExportMount == "" {
		opts.ExportMount = DefaultExportMount
	}

	return &Service{
		engine:   engine,
		runtime:  runtime,
		notifier: notifier,
		opts:     opts,
		log:      log,
	}
}

// ValidateVolumeName rejects names the engine would not accept, which also
// keeps bind specifications from being smuggled through a volume name.
func ValidateVolumeName(name string) error {
	if !volumeNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidVolume, name)
	}
	return nil
}

// fail reports err through the notifier and returns it.
func (s *Service) fail(err error) error {
	s.notifier.Error(err.Error())
	return err
}

// errorStderr returns the captured stderr of an engine failure, or the error
// text when none was captured.
func errorStderr(err error) string {
	var engineErr *domain.EngineError
	if errors.As(err, &engineErr) && strings.TrimSpace(engineErr.Stderr) != "" {
		return strings.TrimSpace(engineErr.Stderr)
	}
	return err.Error()
}

// errorCode returns the exit code of an engine failure as text.
func errorCode(err error) string {
	var engineErr *domain.EngineError
	if errors.As(err, &engineErr) {
		return strconv.Itoa(engineErr.Code)
	}
	return "unknown"
}
