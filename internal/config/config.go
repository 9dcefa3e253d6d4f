package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the whole TOML file. Missing keys keep their defaults.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Sandbox SandboxConfig `toml:"sandbox"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// EngineConfig tunes the physics engine.
type EngineConfig struct {
	MaxStep Duration `toml:"max_step"` // cap on one tick's elapsed time; 0 = none
}

// SandboxConfig controls arena generation and the tick loop.
type SandboxConfig struct {
	TickRate    Duration `toml:"tick_rate"`
	Arena       string   `toml:"arena"` // preset name, see assets.Arenas
	Seed        int64    `toml:"seed"`  // 0 = time-based
	Crates      int      `toml:"crates"`
	Drifters    int      `toml:"drifters"`
	PlayerSpeed float64  `toml:"player_speed"` // tiles per second
	DriftSpeed  float64  `toml:"drift_speed"`  // tiles per second
}

// ServerConfig is read by the SSH server only.
type ServerConfig struct {
	Port    int    `toml:"port"`
	HostKey string `toml:"host_key"`
	MaxConn int    `toml:"max_conn"`
}

// LoggingConfig selects the zap level, encoder and destination.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Sandbox.TickRate.Duration <= 0 {
		return fmt.Errorf("sandbox.tick_rate must be positive, got %s", c.Sandbox.TickRate.Duration)
	}
	if c.Engine.MaxStep.Duration < 0 {
		return fmt.Errorf("engine.max_step must not be negative, got %s", c.Engine.MaxStep.Duration)
	}
	if c.Sandbox.Crates < 0 || c.Sandbox.Drifters < 0 {
		return fmt.Errorf("sandbox body counts must not be negative")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxStep: Duration{250 * time.Millisecond},
		},
		Sandbox: SandboxConfig{
			TickRate:    Duration{33 * time.Millisecond},
			Arena:       "warehouse",
			Crates:      12,
			Drifters:    6,
			PlayerSpeed: 8,
			DriftSpeed:  5,
		},
		Server: ServerConfig{
			Port:    2222,
			HostKey: "server_host_key",
			MaxConn: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
