package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/logtree/channel"
	"github.com/kbukum/logtree/logger"
)

// Environment variables overriding the root logger's configuration. They
// are read after the config file and any .env file.
const (
	EnvLevel   = "LOGTREE_LEVEL"
	EnvChannel = "LOGTREE_CHANNEL"
)

// LoaderConfig holds optional loader inputs.
type LoaderConfig struct {
	// EnvFile is a .env file loaded into the process environment before
	// overrides are read.
	EnvFile string
	// Key is the config-file key holding the logging section. Defaults to
	// "logging".
	Key string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithEnvFile sets a .env file to load before reading overrides.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithKey sets the config-file key holding the logging section.
func WithKey(key string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Key = key }
}

// Load reads the logging section from the given config file, applies
// defaults, environment overrides and validation, and returns the result.
// An empty configFile yields a config built purely from defaults and the
// environment.
func Load(configFile string, opts ...LoaderOption) (*Config, error) {
	lc := LoaderConfig{Key: "logging"}
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", lc.EnvFile, err)
		}
	}

	var cfg Config
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		if err := v.UnmarshalKey(lc.Key, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling %s section: %w", lc.Key, err)
		}
	}
	applyEnvOverrides(&cfg)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides rewrites the root logger entry from LOGTREE_LEVEL and
// LOGTREE_CHANNEL when they are set.
func applyEnvOverrides(cfg *Config) {
	level := os.Getenv(EnvLevel)
	ch := os.Getenv(EnvChannel)
	if level == "" && ch == "" {
		return
	}
	if cfg.Loggers == nil {
		cfg.Loggers = make(map[string]LoggerConfig)
	}
	root := cfg.Loggers[logger.RootName]
	if level != "" {
		root.Level = level
	}
	if ch != "" {
		root.Channel = ch
	}
	cfg.Loggers[logger.RootName] = root
}

// Configure is Load followed by Apply on the process-wide registry and
// channel directory.
func Configure(configFile string, opts ...LoaderOption) error {
	cfg, err := Load(configFile, opts...)
	if err != nil {
		return err
	}
	return cfg.Apply(logger.Default(), channel.Default())
}
