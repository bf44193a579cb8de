package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOptions selects where log output goes.
type LoggerOptions struct {
	// Console receives human or JSON output. Nil disables console output.
	Console io.Writer
	// LevelOverride replaces the configured level when set.
	LevelOverride string
}

// initLogger builds the application logger. The returned cleanup closes the
// log file, if any.
func initLogger(cfg Config, opts LoggerOptions) (zerolog.Logger, func(), error) {
	levelName := cfg.Logging.Level
	if opts.LevelOverride != "" {
		levelName = opts.LevelOverride
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var writers []io.Writer
	if opts.Console != nil {
		if cfg.Logging.Format == "json" {
			writers = append(writers, opts.Console)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.Kitchen})
		}
	}

	cleanup := func() {}
	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = DefaultLogPath()
		}

		// Create logs directory with secure permissions (0700 - owner only)
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create logs directory: %w", err)
		}

		maxSize, maxAge, err := cfg.logRotation()
		if err != nil {
			return zerolog.Nop(), nil, err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     maxAge,
			Compress:   true,
		}
		writers = append(writers, fileWriter)
		cleanup = func() { _ = fileWriter.Close() }
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, nil
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("app", "vackup").
		Logger()

	return log, cleanup, nil
}
