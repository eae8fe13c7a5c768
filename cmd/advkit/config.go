package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "advkit"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Config is the CLI configuration file.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Pairs PairsConfig `yaml:"pairs"`
}

// StoreConfig selects where manifests are kept.
type StoreConfig struct {
	Kind      string `yaml:"kind"` // local, minio or s3
	Path      string `yaml:"path,omitempty"`
	Bucket    string `yaml:"bucket,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Insecure  bool   `yaml:"insecure,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// PairsConfig holds defaults for the pairs command.
type PairsConfig struct {
	Pos         float64 `yaml:"pos"`
	Neg         float64 `yaml:"neg"`
	Compression string  `yaml:"compression,omitempty"`
	Codec       string  `yaml:"codec,omitempty"`
	Seed        *int64  `yaml:"seed,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Kind: "local", Path: "manifests"},
		Pairs: PairsConfig{Pos: 1, Neg: 0, Compression: "zstd", Codec: "go-json"},
	}
}

// DefaultConfigPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/advkit/config.yml.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// LoadConfig loads path over the defaults and applies environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from ADVKIT_* variables, which may come
// from a .env file.
func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&c.Store.Kind, "ADVKIT_STORE")
	setString(&c.Store.Path, "ADVKIT_STORE_PATH")
	setString(&c.Store.Bucket, "ADVKIT_BUCKET")
	setString(&c.Store.Prefix, "ADVKIT_PREFIX")
	setString(&c.Store.Endpoint, "ADVKIT_ENDPOINT")
	setString(&c.Store.Region, "ADVKIT_REGION")
	setString(&c.Store.AccessKey, "ADVKIT_ACCESS_KEY")
	setString(&c.Store.SecretKey, "ADVKIT_SECRET_KEY")

	if v := os.Getenv("ADVKIT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ADVKIT_SEED: %w", err)
		}
		c.Pairs.Seed = &seed
	}
	return nil
}
