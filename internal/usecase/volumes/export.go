package volumes

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
)

// tar strips the leading slash from absolute member names and says so on
// stderr. Busybox and GNU tar word it slightly differently.
var benignStderrLine = regexp.MustCompile("(?i)^tar: removing leading [`']?/'? from (member names|hard link targets)$")

// ArchiveName returns the file name Export produces for a volume.
func ArchiveName(volumeName string) string {
	return volumeName + ".tar.gz"
}

// Export archives the volume into <exportPath>/<volume>.tar.gz using a
// throwaway helper container.
func (s *Service) Export(ctx context.Context, volumeName, exportPath string) error {
	if exportPath == "" {
		return s.fail(domain.ErrNoExportPath)
	}
	if err := ValidateVolumeName(volumeName); err != nil {
		return s.fail(err)
	}

	ctx, log := s.withLogger(ctx, "Export", map[string]any{
		logger.FieldVolume: volumeName,
		logger.FieldPath:   exportPath,
	})

	result, err := s.engine.Exec(ctx, "run", s.exportArgs(volumeName, exportPath)...)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to backup volume %s to %s: %s", volumeName, exportPath, errorCode(err)))
		return logger.WrapErr(log, err, "failed to export volume")
	}

	if rest := UnexpectedStderr(result.Stderr); rest != "" {
		s.notifier.Error(result.Stderr)
		log.Error().Str("stderr", rest).Msg("export reported errors")
		return fmt.Errorf("%w: %s", domain.ErrExportFailed, rest)
	}

	log.Info().Str("archive", path.Join(exportPath, ArchiveName(volumeName))).Msg("volume exported")
	s.notifier.Success(fmt.Sprintf("Volume %s exported to %s", volumeName, exportPath))
	return nil
}

func (s *Service) exportArgs(volumeName, exportPath string) []string {
	return []string{
		"--rm",
		fmt.Sprintf("-v=%s:%s", volumeName, s.opts.VolumeMount),
		fmt.Sprintf("-v=%s:%s", exportPath, s.opts.ExportMount),
		s.opts.HelperImage,
		"tar",
		"-zcvf",
		path.Join(s.opts.ExportMount, ArchiveName(volumeName)),
		s.opts.VolumeMount,
	}
}

// UnexpectedStderr drops the benign tar diagnostics from stderr and returns
// what is left. Blank lines only count as noise when tar printed one of its
// diagnostics; otherwise any non-empty stderr is returned unchanged.
func UnexpectedStderr(stderr string) string {
	if stderr == "" {
		return ""
	}

	var kept []string
	benign := false
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimRight(line, "\r")
		if benignStderrLine.MatchString(strings.TrimSpace(line)) {
			benign = true
			continue
		}
		kept = append(kept, line)
	}
	if !benign {
		return stderr
	}

	rest := kept[:0]
	for _, line := range kept {
		if strings.TrimSpace(line) != "" {
			rest = append(rest, line)
		}
	}
	return strings.Join(rest, "\n")
}
