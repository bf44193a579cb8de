package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/vackup/internal/adapters/out/dockercli"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/internal/usecase/volumes"
	"github.com/bnema/vackup/pkg/bytesize"
	"github.com/bnema/vackup/pkg/duration"
)

// EnvPrefix prefixes every environment override, e.g. VACKUP_HELPER_IMAGE.
const EnvPrefix = "VACKUP"

// Config holds the application configuration.
type Config struct {
	Engine struct {
		Binary string `mapstructure:"binary"`
		Host   string `mapstructure:"host"`
	} `mapstructure:"engine"`

	Helper struct {
		Image       string `mapstructure:"image"`
		VolumeMount string `mapstructure:"volume_mount"`
		ExportMount string `mapstructure:"export_mount"`
	} `mapstructure:"helper"`

	Export struct {
		DefaultDir string `mapstructure:"default_dir"`
	} `mapstructure:"export"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    string `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     string `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Server struct {
		Addr      string  `mapstructure:"addr"`
		Socket    string  `mapstructure:"socket"`
		RateLimit float64 `mapstructure:"rate_limit"`
		Burst     int     `mapstructure:"burst"`
	} `mapstructure:"server"`
}

// VolumeOptions returns the helper container options of the volume service.
func (c Config) VolumeOptions() volumes.Options {
	return volumes.Options{
		HelperImage: c.Helper.Image,
		VolumeMount: c.Helper.VolumeMount,
		ExportMount: c.Helper.ExportMount,
	}
}

// LoadConfig reads envFile (when present) into the process environment, then
// the config file, then VACKUP_* overrides.
func LoadConfig(configPath, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("engine.binary", dockercli.DefaultBinary)
	v.SetDefault("engine.host", "")
	v.SetDefault("helper.image", volumes.DefaultHelperImage)
	v.SetDefault("helper.volume_mount", volumes.DefaultVolumeMount)
	v.SetDefault("helper.export_mount", volumes.DefaultExportMount)
	v.SetDefault("export.default_dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", "10MB")
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", "4w")
	v.SetDefault("server.addr", "127.0.0.1:7777")
	v.SetDefault("server.socket", "")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.burst", 20)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", domain.ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", domain.ErrInvalidConfig, c.Logging.Format)
	}
	if strings.TrimSpace(c.Engine.Binary) == "" {
		return fmt.Errorf("%w: engine.binary is empty", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Helper.Image) == "" {
		return fmt.Errorf("%w: helper.image is empty", domain.ErrInvalidConfig)
	}
	for key, mount := range map[string]string{
		"helper.volume_mount": c.Helper.VolumeMount,
		"helper.export_mount": c.Helper.ExportMount,
	} {
		if !path.IsAbs(mount) || path.Clean(mount) == "/" {
			return fmt.Errorf("%w: %s must be an absolute path below /, got %q", domain.ErrInvalidConfig, key, mount)
		}
	}
	if c.Helper.VolumeMount == c.Helper.ExportMount {
		return fmt.Errorf("%w: helper mounts must differ", domain.ErrInvalidConfig)
	}
	if c.Logging.File.Enabled {
		if _, _, err := c.logRotation(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("%w: server.rate_limit must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// logRotation converts the human-readable rotation limits into the whole
// megabytes and days the log file writer expects. Both are rounded up.
func (c Config) logRotation() (int, int, error) {
	size, err := bytesize.Parse(c.Logging.File.MaxSize)
	if err != nil {
		return 0, 0, fmt.Errorf("logging.file.max_size: %w", err)
	}
	age, err := duration.Parse(c.Logging.File.MaxAge)
	if err != nil {
		return 0, 0, fmt.Errorf("logging.file.max_age: %w", err)
	}
	if size <= 0 {
		return 0, 0, fmt.Errorf("logging.file.max_size must be positive")
	}
	if age < 0 {
		return 0, 0, fmt.Errorf("logging.file.max_age must not be negative")
	}

	return bytesize.CeilMB(size), duration.CeilDays(age), nil
}
