package volumes

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
	"github.com/bnema/vackup/pkg/validation"
)

// Import restores an archive produced by Export into the volume. Containers
// running against the volume are stopped for the duration of the restore and
// started again afterwards.
func (s *Service) Import(ctx context.Context, volumeName, archivePath string) error {
	if err := ValidateVolumeName(volumeName); err != nil {
		return s.fail(err)
	}
	if s.runtime == nil {
		return s.fail(domain.ErrEngineUnavailable)
	}

	absPath, err := filepath.Abs(archivePath)
	if err != nil {
		return s.fail(fmt.Errorf("resolve archive path: %w", err))
	}
	if info, err := os.Stat(absPath); err != nil || info.IsDir() {
		return s.fail(fmt.Errorf("%w: %s", domain.ErrArchiveNotFound, archivePath))
	}
	if err := s.checkRuntime(ctx); err != nil {
		return err
	}

	ctx, log := s.withLogger(ctx, "Import", map[string]any{
		logger.FieldVolume: volumeName,
		logger.FieldPath:   absPath,
	})

	stopped, err := s.stopAttachedContainers(ctx, volumeName)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to stop containers using volume %s: %s", volumeName, err))
		return logger.WrapErr(log, err, "failed to stop attached containers")
	}
	defer s.restartContainers(ctx, volumeName, stopped)

	dir, file := filepath.Split(absPath)
	result, err := s.engine.Exec(ctx, "run", s.importArgs(volumeName, dir, file)...)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to import %s into volume %s: %s", archivePath, volumeName, errorCode(err)))
		return logger.WrapErr(log, err, "failed to import volume")
	}
	if rest := UnexpectedStderr(result.Stderr); rest != "" {
		s.notifier.Error(result.Stderr)
		log.Error().Str("stderr", rest).Msg("import reported errors")
		return fmt.Errorf("%w: %s", domain.ErrImportFailed, rest)
	}

	log.Info().Msg("volume imported")
	s.notifier.Success(fmt.Sprintf("Volume %s imported from %s", volumeName, archivePath))
	return nil
}

func (s *Service) importArgs(volumeName, dir, file string) []string {
	script := fmt.Sprintf("%s && tar -xzvf %s -C /",
		clearCommand(s.opts.VolumeMount),
		shellQuote(path.Join(s.opts.ExportMount, file)),
	)
	return []string{
		"--rm",
		fmt.Sprintf("-v=%s:%s", volumeName, s.opts.VolumeMount),
		fmt.Sprintf("-v=%s:%s:ro", filepath.Clean(dir), s.opts.ExportMount),
		s.opts.HelperImage,
		"sh",
		"-c",
		script,
	}
}

// LoadFromImage replaces the content of the volume with the /volume-data
// directory of image.
func (s *Service) LoadFromImage(ctx context.Context, volumeName, image string) error {
	if err := ValidateVolumeName(volumeName); err != nil {
		return s.fail(err)
	}
	image = strings.TrimSpace(image)
	if err := validation.ValidateImageReference(image); err != nil {
		return s.fail(fmt.Errorf("%w: %q: %v", domain.ErrInvalidImage, image, err))
	}
	if s.runtime == nil {
		return s.fail(domain.ErrEngineUnavailable)
	}
	if err := s.checkRuntime(ctx); err != nil {
		return err
	}

	ctx, log := s.withLogger(ctx, "LoadFromImage", map[string]any{
		logger.FieldVolume: volumeName,
		logger.FieldImage:  image,
	})

	stopped, err := s.stopAttachedContainers(ctx, volumeName)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to stop containers using volume %s: %s", volumeName, err))
		return logger.WrapErr(log, err, "failed to stop attached containers")
	}
	defer s.restartContainers(ctx, volumeName, stopped)

	result, err := s.runtime.RunHelper(ctx, domain.HelperSpec{
		Image: image,
		Cmd: []string{"/bin/sh", "-c", fmt.Sprintf("%s && cp -Rp %s/. %s/",
			clearCommand(s.opts.VolumeMount), imageDataPath, s.opts.VolumeMount)},
		Binds: []string{volumeName + ":" + s.opts.VolumeMount},
	})
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to load image %s into volume %s: %s", image, volumeName, err))
		return logger.WrapErr(log, err, "failed to load volume from image")
	}
	if result.ExitCode != 0 {
		stderr := strings.TrimSpace(string(result.Stderr))
		s.notifier.Error(fmt.Sprintf("Failed to load image %s into volume %s: %s", image, volumeName, stderr))
		log.Error().Int64("exit_code", result.ExitCode).Str("stderr", stderr).Msg("load helper failed")
		return fmt.Errorf("%w: helper exited with status code %d", domain.ErrLoadFailed, result.ExitCode)
	}

	log.Info().Msg("volume loaded from image")
	s.notifier.Success(fmt.Sprintf("Volume %s loaded from image %s", volumeName, image))
	return nil
}

// checkRuntime pings the engine API before any container is stopped.
func (s *Service) checkRuntime(ctx context.Context) error {
	if err := s.runtime.Ping(ctx); err != nil {
		return s.fail(fmt.Errorf("%w: %v", domain.ErrEngineUnavailable, err))
	}
	return nil
}

// stopAttachedContainers stops the running containers that reference the
// volume and returns the IDs it stopped.
func (s *Service) stopAttachedContainers(ctx context.Context, volumeName string) ([]string, error) {
	log := logger.FromCtx(ctx)

	containers, err := s.runtime.ContainersForVolume(ctx, volumeName)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		stopped []string
	)
	g, gCtx := errgroup.WithContext(ctx)
	for _, c := range containers {
		if !c.Running() {
			log.Debug().Str("container", c.Name).Msg("container is not running, no need to stop it")
			continue
		}
		g.Go(func() error {
			if err := s.runtime.StopContainer(gCtx, c.ID); err != nil {
				return fmt.Errorf("stop %s: %w", c.Name, err)
			}
			mu.Lock()
			stopped = append(stopped, c.ID)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Leave nothing half-stopped behind.
		s.restartContainers(ctx, volumeName, stopped)
		return nil, err
	}
	return stopped, nil
}

// restartContainers starts the given containers again. Failures are notified
// rather than returned: the volume operation itself already completed.
func (s *Service) restartContainers(ctx context.Context, volumeName string, ids []string) {
	if len(ids) == 0 {
		return
	}
	log := logger.FromCtx(ctx)

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if err := s.runtime.StartContainer(ctx, id); err != nil {
				return fmt.Errorf("start %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to restart containers")
		s.notifier.Error(fmt.Sprintf("Failed to restart containers using volume %s: %s", volumeName, err))
	}
}

// clearCommand removes every entry of dir, hidden ones included:
// ..?* matches dot-dot names except "..", .[!.]* matches dot names except ".".
func clearCommand(dir string) string {
	return fmt.Sprintf("rm -rf %[1]s/..?* %[1]s/.[!.]* %[1]s/*", dir)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
