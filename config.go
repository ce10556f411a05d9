package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "BDAYWISH_"
	envConfigPath  = "BDAYWISH_CONFIG"
	configFileName = ".bdaywish.yaml"
)

type Config struct {
	// SaveDirectory is where exported greetings land. Empty means the
	// working directory.
	SaveDirectory string `koanf:"save_directory"`

	// TickMS is the confetti update period in milliseconds.
	TickMS int `koanf:"tick_ms"`

	// FallbackWidth and FallbackHeight stand in for the viewport, in
	// pixels, when the terminal size is unknown.
	FallbackWidth  int `koanf:"fallback_width"`
	FallbackHeight int `koanf:"fallback_height"`

	// Seed fixes the particle generator. Zero seeds from the clock.
	Seed int64 `koanf:"seed"`

	LogFile  string `koanf:"log_file"`
	LogLevel string `koanf:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:  "",
		TickMS:         int(defaultTickInterval / time.Millisecond),
		FallbackWidth:  int(defaultViewWidth),
		FallbackHeight: int(defaultViewHeight),
		LogLevel:       "info",
	}
}

// loadConfig layers defaults, an optional YAML file and BDAYWISH_* env vars,
// lowest precedence first. The file is $BDAYWISH_CONFIG when set, otherwise
// ~/.bdaywish.yaml if it exists.
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	path := os.Getenv(envConfigPath)
	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(homeDir, configFileName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := defaultConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.SaveDirectory = expandPath(cfg.SaveDirectory)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMS)
	}
	if c.FallbackWidth <= 0 || c.FallbackHeight <= 0 {
		return fmt.Errorf("%w: fallback size must be positive, got %dx%d",
			ErrInvalidConfig, c.FallbackWidth, c.FallbackHeight)
	}
	return nil
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

func (c *Config) FallbackViewport() Viewport {
	return Viewport{Width: float64(c.FallbackWidth), Height: float64(c.FallbackHeight)}
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", err
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
