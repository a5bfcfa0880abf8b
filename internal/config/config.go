// Package config provides configuration loading for the hanoi server and TUI.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"svw.info/hanoi/internal/domain"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Game   GameConfig   `koanf:"game"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// GameConfig configures new game instances.
type GameConfig struct {
	Disks int      `koanf:"disks"`
	Pace  Duration `koanf:"pace"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or console
}

// Load reads configuration with the following precedence (highest first):
//
//  1. Environment variables with the HANOI_ prefix (HANOI_SERVER_ADDR,
//     HANOI_GAME_DISKS, HANOI_LOG_LEVEL, ...)
//  2. YAML config file at path, when the file exists
//  3. Hardcoded defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if content, err := os.ReadFile(path); err == nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// HANOI_SERVER_ADDR -> server.addr, HANOI_GAME_PACE -> game.pace
	if err := k.Load(env.Provider("HANOI_", ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, "HANOI_"))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Game.Disks == 0 {
		cfg.Game.Disks = 5
	}
	if cfg.Game.Pace == 0 {
		cfg.Game.Pace = Duration(500 * time.Millisecond)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate rejects configurations the core would refuse at runtime.
func (c *Config) Validate() error {
	if c.Game.Disks < domain.MinDisks || c.Game.Disks > domain.MaxDisks {
		return fmt.Errorf("game.disks must be in [%d,%d], got %d",
			domain.MinDisks, domain.MaxDisks, c.Game.Disks)
	}
	if c.Game.Pace < 0 {
		return fmt.Errorf("game.pace cannot be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
