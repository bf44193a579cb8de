package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/vackup/internal/adapters/out/docker"
	"github.com/bnema/vackup/internal/adapters/out/dockercli"
	"github.com/bnema/vackup/internal/adapters/out/notify"
	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/usecase/volumes"
	"github.com/bnema/vackup/pkg/logger"
)

// Options controls how the application is assembled.
type Options struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	// Console receives log output. Nil keeps logs in the file only.
	Console io.Writer
	// Notifier receives user-facing notifications. It is wrapped so every
	// notification is also logged.
	Notifier out.Notifier
}

// App holds the wired application.
type App struct {
	Config  Config
	Log     zerolog.Logger
	Runner  *dockercli.Runner
	Runtime *docker.Runtime
	Volumes *volumes.Service

	cleanup func()
}

// New loads the configuration and wires the adapters into the use cases.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := LoadConfig(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg, opts)
}

// NewWithConfig wires the application from an already loaded configuration.
func NewWithConfig(ctx context.Context, cfg Config, opts Options) (*App, error) {
	log, cleanup, err := initLogger(cfg, LoggerOptions{
		Console:       opts.Console,
		LevelOverride: opts.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.CtxWithFields(logger.WithCtx(ctx, log), map[string]any{
		logger.FieldLayer:  "app",
		logger.FieldAction: "New",
	})
	appLog := logger.FromCtx(ctx)

	runner := dockercli.NewRunner(dockercli.Config{
		Binary: cfg.Engine.Binary,
		Host:   cfg.Engine.Host,
	})

	a := &App{
		Config:  cfg,
		Log:     log,
		Runner:  runner,
		cleanup: cleanup,
	}

	// The SDK client is only needed for import and load; listing and export
	// keep working through the CLI when it cannot be created.
	runtime, err := docker.NewRuntime(cfg.Engine.Host)
	if err != nil {
		appLog.Warn().Err(err).Msg("Docker API client unavailable, import and load are disabled")
	} else {
		a.Runtime = runtime
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLog(log)
	} else {
		notifier = notify.Multi{notifier, notify.NewLog(log)}
	}

	var rt out.ContainerRuntime
	if a.Runtime != nil {
		rt = a.Runtime
	}
	a.Volumes = volumes.NewService(runner, rt, notifier, cfg.VolumeOptions(), log)

	appLog.Debug().
		Str("engine", runner.Binary()).
		Str("helper_image", cfg.Helper.Image).
		Msg("application wired")

	return a, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logger.WithCtx(ctx, a.Log)
}

// Close releases the log file.
func (a *App) Close() error {
	if a.cleanup != nil {
		a.cleanup()
	}
	return nil
}
