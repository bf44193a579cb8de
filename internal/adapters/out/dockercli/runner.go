// Package dockercli implements the engine runner by invoking the docker CLI.
package dockercli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
)

// DefaultBinary is the engine CLI used when none is configured.
const DefaultBinary = "docker"

// Ensure Runner implements out.EngineRunner.
var _ out.EngineRunner = (*Runner)(nil)

// Config holds the runner configuration.
type Config struct {
	// Binary is the CLI executable, looked up in PATH when not absolute.
	Binary string
	// Host is exported as DOCKER_HOST when set.
	Host string
}

// Runner runs engine subcommands as child processes.
type Runner struct {
	binary string
	env    []string
}

// NewRunner creates a new CLI runner.
func NewRunner(cfg Config) *Runner {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var env []string
	if cfg.Host != "" {
		env = append(os.Environ(), "DOCKER_HOST="+cfg.Host)
	}

	return &Runner{binary: binary, env: env}
}

// Exec runs `<binary> <subcommand> <args...>` and captures both streams.
// A non-zero exit is returned as *domain.EngineError carrying the exit code;
// stderr written by a successful run is returned in the result.
func (r *Runner) Exec(ctx context.Context, subcommand string, args ...string) (*domain.CommandResult, error) {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "adapter",
		logger.FieldAdapter: "dockercli",
		logger.FieldAction:  "Exec",
		"subcommand":        subcommand,
	})
	log := logger.FromCtx(ctx)

	argv := append([]string{subcommand}, args...)
	cmd := exec.CommandContext(ctx, r.binary, argv...)
	if r.env != nil {
		cmd.Env = r.env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.Debug().
		Strs("args", args).
		Dur(logger.FieldDuration, time.Since(start)).
		Msg("engine command finished")

	if err != nil {
		engineErr := &domain.EngineError{Code: -1, Stderr: stderr.String(), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			engineErr.Code = exitErr.ExitCode()
			engineErr.Err = nil
		}
		log.Debug().Int("code", engineErr.Code).Str("stderr", engineErr.Stderr).Msg("engine command failed")
		return nil, engineErr
	}

	return &domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}

// Binary returns the configured CLI executable.
func (r *Runner) Binary() string {
	return r.binary
}
