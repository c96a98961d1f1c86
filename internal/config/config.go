package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Configuration is the application configuration, loaded once from a YAML
// file with sensible defaults for anything left unset.
type Configuration struct {
	Environment string         `yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Storage     StorageConfig  `yaml:"storage"`
	Sentry      SentryConfig   `yaml:"sentry"`
}

// ServerConfig holds the HTTP listener settings. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`
	IdleTimeout  int    `yaml:"idle_timeout"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// StorageConfig points at the object store the share flow uploads PDFs to.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	Tenant    string `yaml:"tenant"`
	Directory string `yaml:"directory"`
	APIKey    string `yaml:"api_key"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

var (
	config     *Configuration
	configErr  error
	configOnce sync.Once
)

// Load reads the configuration file once. Later calls return the first
// result — including the first error — regardless of path.
func Load(path string) (*Configuration, error) {
	configOnce.Do(func() {
		config, configErr = load(path)
	})
	return config, configErr
}

func load(path string) (*Configuration, error) {
	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("decoding config file: %w", err)
		}
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Defaults returns a configuration with every default applied and no file
// read. Used by the CLI commands that run without a config file.
func Defaults() *Configuration {
	cfg := &Configuration{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Configuration) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 120
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.Username == "" {
		cfg.Database.Username = "postgres"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "qualipharm"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 50
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Storage.Tenant == "" {
		cfg.Storage.Tenant = "qualipharm"
	}
	if cfg.Storage.Directory == "" {
		cfg.Storage.Directory = "documents"
	}
}
