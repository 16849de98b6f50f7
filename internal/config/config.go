package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Backends accepted in the backend key.
const (
	BackendSQLite = "sqlite"
	BackendPebble = "pebble"
)

// Config represents the global ~/.dmsync/config.toml.
type Config struct {
	DefaultInstance string        `toml:"default_instance"`
	Backend         string        `toml:"backend"`
	LogLevel        string        `toml:"log_level"`
	Roster          RosterConfig  `toml:"roster"`
	Gateway         GatewayConfig `toml:"gateway"`
	Limits          LimitsConfig  `toml:"limits"`
	Sync            SyncConfig    `toml:"sync"`
}

// RosterConfig names where the user list comes from. URL wins over File;
// with neither the roster is empty.
type RosterConfig struct {
	URL  string   `toml:"url"`
	File string   `toml:"file"`
	TTL  Duration `toml:"ttl"`
}

type GatewayConfig struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
}

// LimitsConfig is the per-user write rate. SendsPerSecond 0 means no limit.
type LimitsConfig struct {
	SendsPerSecond float64 `toml:"sends_per_second"`
	Burst          int     `toml:"burst"`
}

type SyncConfig struct {
	// ResyncInterval reloads every live namespace periodically; zero disables it.
	ResyncInterval Duration `toml:"resync_interval"`
}

// Duration is a time.Duration written as "30s" in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:  BackendSQLite,
		LogLevel: "info",
		Roster:   RosterConfig{TTL: Duration{30 * time.Second}},
		Gateway:  GatewayConfig{Enabled: true, Listen: "127.0.0.1:8787"},
		Limits:   LimitsConfig{SendsPerSecond: 5, Burst: 10},
	}
}

// Load reads config from the given path over the defaults. Returns an
// error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEffective builds the configuration the daemon runs with: a .env file
// in the working directory is loaded into the environment, then the TOML
// file (if present) is read and DMSYNC_* variables are applied on top.
func LoadEffective(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from DMSYNC_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"DMSYNC_INSTANCE":       &c.DefaultInstance,
		"DMSYNC_BACKEND":        &c.Backend,
		"DMSYNC_LOG_LEVEL":      &c.LogLevel,
		"DMSYNC_ROSTER_URL":     &c.Roster.URL,
		"DMSYNC_ROSTER_FILE":    &c.Roster.File,
		"DMSYNC_GATEWAY_LISTEN": &c.Gateway.Listen,
	}
	for key, field := range str {
		if v, ok := lookup(key); ok {
			*field = v
		}
	}
	if v, ok := lookup("DMSYNC_GATEWAY_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DMSYNC_GATEWAY_ENABLED: %w", err)
		}
		c.Gateway.Enabled = enabled
	}
	return nil
}

// Validate rejects settings the daemon cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendPebble:
	default:
		return fmt.Errorf("backend %q: must be %s or %s", c.Backend, BackendSQLite, BackendPebble)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Limits.SendsPerSecond < 0 || c.Limits.Burst < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if c.Roster.TTL.Duration < 0 || c.Sync.ResyncInterval.Duration < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
