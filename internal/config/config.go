// Package config loads the settings of the inchi-go command from a YAML or
// JSON file and INCHI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type Config struct {
	Library LibraryConfig `mapstructure:"library" json:"library"`
	Server  ServerConfig  `mapstructure:"server" json:"server"`
	Cache   CacheConfig   `mapstructure:"cache" json:"cache"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
}

type LibraryConfig struct {
	Options    string `mapstructure:"options" json:"options"`
	ComputeKey bool   `mapstructure:"compute_key" json:"compute_key"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" json:"addr"`
}

type CacheConfig struct {
	// Path of the sqlite database; empty disables caching.
	Path string `mapstructure:"path" json:"path"`
	// Vacuum is a cron spec for compacting the database while serving;
	// empty disables it.
	Vacuum string `mapstructure:"vacuum" json:"vacuum"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// EnvPrefix prefixes the environment overrides, e.g. INCHI_SERVER_ADDR.
const EnvPrefix = "INCHI"

func setDefaults(v *viper.Viper) {
	v.SetDefault("library.options", "")
	v.SetDefault("library.compute_key", true)
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("cache.path", "")
	v.SetDefault("cache.vacuum", "@daily")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads path, if given, then applies environment overrides and
// defaults. path must stay inside the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		absPath, err := SecurePath(path)
		if err != nil {
			return nil, fmt.Errorf("secure path: %w", err)
		}
		v.SetConfigFile(absPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("invalid server.addr %q: %w", c.Server.Addr, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	if c.Cache.Path != "" && c.Cache.Path != ":memory:" {
		if _, err := SecurePath(c.Cache.Path); err != nil {
			return fmt.Errorf("cache.path: %w", err)
		}
	}
	if c.Cache.Vacuum != "" {
		if _, err := cron.ParseStandard(c.Cache.Vacuum); err != nil {
			return fmt.Errorf("invalid cache.vacuum %q: %w", c.Cache.Vacuum, err)
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q", s)
	}
	return l, nil
}

// NewLogger builds the slog logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
