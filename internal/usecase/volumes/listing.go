package volumes

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
)

const (
	volumesFormat = "{{ json .Volumes }}"
	namesFormat   = "{{ .Names}}"
)

// ListVolumes returns the engine volumes sorted by name.
func (s *Service) ListVolumes(ctx context.Context) ([]domain.Volume, error) {
	ctx, log := s.withLogger(ctx, "ListVolumes", nil)

	result, err := s.engine.Exec(ctx, "system", "df", "-v", "--format", volumesFormat)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to list volumes: %s", errorStderr(err)))
		return nil, logger.WrapErr(log, err, "failed to list volumes")
	}
	if result.Stderr != "" {
		s.notifier.Error(result.Stderr)
		log.Error().Str("stderr", result.Stderr).Msg("engine reported an error while listing volumes")
		return nil, fmt.Errorf("%w: %s", domain.ErrEngineStderr, strings.TrimSpace(result.Stderr))
	}

	volumes, err := ParseVolumes(result.Stdout)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to list volumes: %s", err))
		return nil, logger.WrapErr(log, err, "failed to decode volumes")
	}

	log.Debug().Int(logger.FieldCount, len(volumes)).Msg("volumes listed")
	return volumes, nil
}

// ContainersForVolume returns the newline-joined names of the containers
// referencing volumeName. It returns false when the engine call failed, in
// which case the names are unknown.
func (s *Service) ContainersForVolume(ctx context.Context, volumeName string) (string, bool) {
	ctx, log := s.withLogger(ctx, "ContainersForVolume", map[string]any{logger.FieldVolume: volumeName})

	result, err := s.engine.Exec(ctx, "ps", "-a", "--filter=volume="+volumeName, "--format="+namesFormat)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to get containers for volume %s: %s Error code: %s",
			volumeName, errorStderr(err), errorCode(err)))
		log.Error().Err(err).Msg("failed to get containers for volume")
		return "", false
	}
	if result.Stderr != "" {
		s.notifier.Error(result.Stderr)
		log.Warn().Str("stderr", result.Stderr).Msg("engine reported an error while listing containers")
	}

	return result.Stdout, true
}

// ResolveContainers runs one lookup per volume concurrently. Results are
// collected by a single writer keyed by volume name, so completion order does
// not matter. Failed lookups are left out of the index.
func (s *Service) ResolveContainers(ctx context.Context, volumes []domain.Volume) domain.ContainerIndex {
	results := make(chan domain.Lookup, len(volumes))

	var g errgroup.Group
	for _, v := range volumes {
		g.Go(func() error {
			names, known := s.ContainersForVolume(ctx, v.Name)
			results <- domain.Lookup{Volume: v.Name, Containers: names, Known: known}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()

	idx := make(domain.ContainerIndex, len(volumes))
	for lookup := range results {
		if lookup.Known {
			idx.Merge(lookup.Volume, lookup.Containers)
		}
	}
	return idx
}

func (s *Service) withLogger(ctx context.Context, action string, fields map[string]any) (context.Context, *zerolog.Logger) {
	l := s.log.With().
		Str(logger.FieldLayer, "usecase").
		Str(logger.FieldUseCase, "volumes").
		Str(logger.FieldAction, action).
		Fields(fields).
		Logger()
	ctx = logger.WithCtx(ctx, l)
	return ctx, logger.FromCtx(ctx)
}

// dfVolume is one element of the engine's verbose disk-usage volume array.
// Depending on the engine version, link count and size are reported either as
// formatted fields or inside UsageData.
type dfVolume struct {
	Name       string    `json:"Name"`
	Driver     string    `json:"Driver"`
	Links      flexValue `json:"Links"`
	Mountpoint string    `json:"Mountpoint"`
	Size       flexValue `json:"Size"`
	UsageData  *struct {
		RefCount int64 `json:"RefCount"`
		Size     int64 `json:"Size"`
	} `json:"UsageData"`
}

// flexValue accepts a JSON string or number.
type flexValue string

func (f *flexValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexValue(n.String())
	return nil
}

// ParseVolumes decodes the disk-usage JSON array and sorts it by name.
// Output wrapped in single quotes, as produced when the format argument went
// through a shell, is accepted.
func ParseVolumes(stdout string) ([]domain.Volume, error) {
	raw := strings.TrimSpace(stdout)
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'"))
	if raw == "" || raw == "null" {
		return []domain.Volume{}, nil
	}

	var entries []dfVolume
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid volume listing: %w", err)
	}

	volumes := make([]domain.Volume, 0, len(entries))
	for _, e := range entries {
		v := domain.Volume{
			Name:       e.Name,
			Driver:     e.Driver,
			MountPoint: e.Mountpoint,
			Size:       string(e.Size),
		}

		// Non-numeric link counts such as "N/A" are reported as zero.
		if links, err := strconv.Atoi(string(e.Links)); err == nil && links > 0 {
			v.Links = links
		} else if e.UsageData != nil && e.UsageData.RefCount > 0 {
			v.Links = int(e.UsageData.RefCount)
		}

		if v.Size == "" && e.UsageData != nil && e.UsageData.Size >= 0 {
			v.Size = units.HumanSize(float64(e.UsageData.Size))
		} else if bytes, err := strconv.ParseInt(v.Size, 10, 64); err == nil {
			v.Size = units.HumanSize(float64(bytes))
		}

		volumes = append(volumes, v)
	}

	domain.SortVolumes(volumes)
	return volumes, nil
}

// TotalSize sums the human-readable volume sizes. Sizes that cannot be
// parsed, such as "N/A", are skipped.
func TotalSize(volumes []domain.Volume) int64 {
	var total int64
	for _, v := range volumes {
		n, err := units.FromHumanSize(v.Size)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}
