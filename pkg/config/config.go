// Package config loads CipherChat configuration from a TOML file.
//
// The configuration selects the storage backend and its connection
// settings, the HTTP listen address, and a few UI defaults. Every field
// has a sensible default so the application runs with no config file at
// all.
//
// # File location
//
// The default path is $XDG_CONFIG_HOME/cipherchat/config.toml (falling
// back to ~/.config/cipherchat/config.toml); commands accept --config to
// point elsewhere.
//
// # Example
//
//	listen = ":8080"
//	username = "alice"
//
//	[storage]
//	backend = "redis"
//
//	[storage.redis]
//	addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cipherchat/cipherchat/pkg/cipher"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

// Backend names accepted in the storage section.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the full application configuration.
type Config struct {
	// Listen is the HTTP API listen address (host:port).
	Listen string `toml:"listen"`

	// Username is the default identity for the CLI and TUI.
	Username string `toml:"username"`

	// DefaultShift is the Caesar shift used when none is given.
	DefaultShift int `toml:"default_shift"`

	Storage Storage `toml:"storage"`
}

// Storage selects and configures the chat repository backend.
type Storage struct {
	// Backend is one of memory, file, redis, or mongo.
	Backend string `toml:"backend"`

	// Dir is the data directory for the file backend (empty for default).
	Dir string `toml:"dir"`

	Redis Redis `toml:"redis"`
	Mongo Mongo `toml:"mongo"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo holds connection settings for the mongo backend.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is present:
// in-memory storage, localhost API, and the classic shift of three.
func Default() Config {
	return Config{
		Listen:       ":8080",
		Username:     "anonymous",
		DefaultShift: cipher.DefaultShift,
		Storage: Storage{
			Backend: BackendMemory,
			Redis:   Redis{Addr: "localhost:6379"},
			Mongo:   Mongo{URI: "mongodb://localhost:27017", Database: "cipherchat"},
		},
	}
}

// DefaultPath returns the default config file location using the XDG
// standard (~/.config/cipherchat/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cipherchat", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cipherchat", "config.toml"), nil
}

// Load reads the config file at path, layered over Default. A missing file
// is not an error: the defaults are returned unchanged. A present but
// invalid file is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", c.Storage.Backend)
	}

	if err := errors.ValidateShift(c.DefaultShift); err != nil {
		return err
	}

	if c.Listen == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	return nil
}
