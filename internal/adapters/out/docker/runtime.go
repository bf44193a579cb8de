// Package docker implements the container runtime adapter using Docker API.
package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
)

// stopTimeout is the grace period, in seconds, before a stopped container is killed.
const stopTimeout = 30

// Ensure Runtime implements out.ContainerRuntime.
var _ out.ContainerRuntime = (*Runtime)(nil)

// apiClient is the subset of the Docker client used by Runtime.
type apiClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
}

// Runtime implements the ContainerRuntime interface using Docker API.
type Runtime struct {
	client apiClient
}

// NewRuntime creates a new Docker runtime instance. host overrides
// DOCKER_HOST when set.
func NewRuntime(host string) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli apiClient) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "adapter",
		logger.FieldAdapter: "docker",
		logger.FieldAction:  "Ping",
	})
	log := logger.FromCtx(ctx)

	if _, err := r.client.Ping(ctx); err != nil {
		return logger.WrapErr(log, fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err), "Docker ping failed")
	}
	return nil
}

// ContainersForVolume lists every container, running or not, that mounts the volume.
func (r *Runtime) ContainersForVolume(ctx context.Context, volumeName string) ([]domain.Container, error) {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "adapter",
		logger.FieldAdapter: "docker",
		logger.FieldAction:  "ContainersForVolume",
		logger.FieldVolume:  volumeName,
	})
	log := logger.FromCtx(ctx)

	containers, err := r.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("volume", volumeName)),
	})
	if err != nil {
		return nil, logger.WrapErr(log, err, "failed to list containers")
	}

	result := make([]domain.Container, 0, len(containers))
	for _, c := range containers {
		// Get the primary name (remove leading slash)
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, domain.Container{
			ID:     c.ID,
			Name:   name,
			Image:  c.Image,
			State:  c.State,
			Labels: c.Labels,
		})
	}

	log.Debug().Int(logger.FieldCount, len(result)).Msg("containers resolved")
	return result, nil
}

// StopContainer stops a container.
func (r *Runtime) StopContainer(ctx context.Context, containerID string) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:    "adapter",
		logger.FieldAdapter:  "docker",
		logger.FieldAction:   "StopContainer",
		logger.FieldEntityID: containerID,
	})
	log := logger.FromCtx(ctx)

	timeout := stopTimeout
	if err := r.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return logger.WrapErr(log, err, "failed to stop container")
	}

	log.Info().Msg("container stopped")
	return nil
}

// StartContainer starts a container.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:    "adapter",
		logger.FieldAdapter:  "docker",
		logger.FieldAction:   "StartContainer",
		logger.FieldEntityID: containerID,
	})
	log := logger.FromCtx(ctx)

	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return logger.WrapErr(log, err, "failed to start container")
	}

	log.Info().Msg("container started")
	return nil
}

// RunHelper creates a container from spec, waits for it to exit and removes
// it. The image is pulled once if it is missing locally.
func (r *Runtime) RunHelper(ctx context.Context, spec domain.HelperSpec) (*domain.HelperResult, error) {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "adapter",
		logger.FieldAdapter: "docker",
		logger.FieldAction:  "RunHelper",
		logger.FieldImage:   spec.Image,
	})
	log := logger.FromCtx(ctx)

	id, err := r.createHelper(ctx, spec)
	if err != nil {
		return nil, logger.WrapErr(log, err, "failed to create helper container")
	}
	defer func() {
		// The caller's context may already be done; removal must still happen.
		if err := r.client.ContainerRemove(context.WithoutCancel(ctx), id, container.RemoveOptions{Force: true}); err != nil {
			log.Warn().Err(err).Str(logger.FieldEntityID, id).Msg("failed to remove helper container")
		}
	}()

	waitCh, errCh := r.client.ContainerWait(ctx, id, container.WaitConditionNextExit)
	if err := r.client.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return nil, logger.WrapErr(log, err, "failed to start helper container")
	}

	var exitCode int64
	select {
	case resp := <-waitCh:
		if resp.Error != nil && resp.Error.Message != "" {
			return nil, logger.WrapErr(log, fmt.Errorf("%s", resp.Error.Message), "helper container wait failed")
		}
		exitCode = resp.StatusCode
	case err := <-errCh:
		return nil, logger.WrapErr(log, err, "failed to wait for helper container")
	case <-ctx.Done():
		return nil, logger.WrapErr(log, ctx.Err(), "helper container canceled")
	}

	logs, err := r.client.ContainerLogs(ctx, id, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return nil, logger.WrapErr(log, err, "failed to read helper container logs")
	}
	defer logs.Close()

	stdout, stderr, err := parseLogOutput(logs)
	if err != nil {
		return nil, logger.WrapErr(log, err, "failed to demultiplex helper container logs")
	}

	log.Info().Int64("exit_code", exitCode).Msg("helper container finished")
	return &domain.HelperResult{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}, nil
}

func (r *Runtime) createHelper(ctx context.Context, spec domain.HelperSpec) (string, error) {
	cfg := &container.Config{
		Image: spec.Image,
		Cmd:   spec.Cmd,
	}
	hostCfg := &container.HostConfig{
		Binds: spec.Binds,
	}

	resp, err := r.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
	if err == nil {
		return resp.ID, nil
	}
	if !errdefs.IsNotFound(err) {
		return "", err
	}

	if err := r.pullImage(ctx, spec.Image); err != nil {
		return "", err
	}
	resp, err = r.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (r *Runtime) pullImage(ctx context.Context, ref string) error {
	log := logger.FromCtx(ctx)
	log.Info().Msg("pulling image")

	reader, err := r.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		if errdefs.IsNotFound(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidImage, ref)
		}
		return fmt.Errorf("failed to pull image %s: %w", ref, err)
	}
	defer reader.Close()

	// Read the response to completion (this is required for the pull to complete)
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("failed to read pull response: %w", err)
	}
	return nil
}

// parseLogOutput splits a multiplexed log stream into stdout and stderr.
func parseLogOutput(r io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, r); err != nil {
		return nil, nil, err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
