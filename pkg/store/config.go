package store

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the journal is stored.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFormat() string
}

const (
	defaultPath      = "~/.moodbubbles"
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// LoadConfig reads .mood.yaml from $MOOD_CONFIG_PATH or the working directory
// and overlays MOOD_* environment variables.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("path", defaultPath)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-format", defaultLogFormat)
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.AutomaticEnv()
	// AutomaticEnv keeps the dash, so bind the underscore names explicitly.
	_ = v.BindEnv("log-level", "MOOD_LOG_LEVEL")
	_ = v.BindEnv("log-format", "MOOD_LOG_FORMAT")

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:   path,
		Level:  v.GetString("log-level"),
		Format: v.GetString("log-format"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Level  string `json:"logLevel"`
	Format string `json:"logFormat"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFormat() string {
	return f.Format
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path   string
	Level  string
	Format string
}

func (s StaticConfig) BasePath() string {
	return s.Path
}

func (s StaticConfig) LogLevel() string {
	if s.Level == "" {
		return defaultLogLevel
	}
	return s.Level
}

func (s StaticConfig) LogFormat() string {
	if s.Format == "" {
		return defaultLogFormat
	}
	return s.Format
}
