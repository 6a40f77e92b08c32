// Package config loads the server configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadOrDefault looks for the configuration file.
const DefaultPath = "configs/iron-kit.yaml"

// Config holds every setting of the iron-kit server.
type Config struct {
	Server struct {
		Address string `yaml:"address"`
		Token   string `yaml:"token"`
	} `yaml:"server"`

	Files struct {
		Root string `yaml:"root"`
	} `yaml:"files"`

	Minio struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"minio"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Address = ":8080"
	cfg.Files.Root = "."
	cfg.Logging.Level = "info"
	return &cfg
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

func finish(cfg *Config) (*Config, error) {
	overrideWithEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("server address is required")
	}
	if strings.TrimSpace(c.Files.Root) == "" {
		return errors.New("files root is required")
	}
	if c.Minio.Endpoint != "" && (c.Minio.AccessKey == "" || c.Minio.SecretKey == "") {
		return fmt.Errorf("minio endpoint %s requires an access key and a secret key", c.Minio.Endpoint)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	return nil
}

// MinioEnabled reports whether object storage routes should be served.
func (c *Config) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

// overrideWithEnv lets environment variables take precedence over the file,
// so secrets do not have to live in it.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("IRONKIT_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("IRONKIT_TOKEN"); v != "" {
		cfg.Server.Token = v
	}
	if v := os.Getenv("IRONKIT_FILES_ROOT"); v != "" {
		cfg.Files.Root = v
	}
	if v := os.Getenv("IRONKIT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.Minio.Endpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.Minio.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.Minio.SecretKey = v
	}
}
