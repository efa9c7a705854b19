// Package config loads per-project settings from .routejump.yaml, a project
// .env file and ROUTEJUMP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/morozRed/routejump/internal/scan"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file name (without extension) looked up in the project root.
	FileName = ".routejump"
	// EnvPrefix prefixes environment overrides, e.g. ROUTEJUMP_PATTERN.
	EnvPrefix = "ROUTEJUMP"
)

var configKeys = []string{"pattern", "ignore", "concurrency", "format"}

// Config holds the settings for one lookup.
type Config struct {
	// Pattern is the base-name glob of routing-configuration files.
	Pattern string `mapstructure:"pattern" json:"pattern" yaml:"pattern"`
	// Ignore adds gitignore-like rules on top of .routejumpignore.
	Ignore []string `mapstructure:"ignore" json:"ignore,omitempty" yaml:"ignore,omitempty"`
	// Concurrency bounds parallel file reads.
	Concurrency int `mapstructure:"concurrency" json:"concurrency" yaml:"concurrency"`
	// Format is the default output format: text, json or yaml.
	Format string `mapstructure:"format" json:"format" yaml:"format"`

	// Path is the config file that was read, empty when defaults were used.
	Path string `mapstructure:"-" json:"path,omitempty" yaml:"path,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Pattern:     scan.DefaultPattern,
		Concurrency: scan.DefaultConcurrency,
		Format:      "text",
	}
}

// Load reads configuration for the project at rootPath. Missing files are
// not an error; defaults apply.
func Load(rootPath string) (Config, error) {
	dotenv, err := readDotEnv(rootPath)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("pattern", defaults.Pattern)
	v.SetDefault("ignore", []string{})
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("format", defaults.Format)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(rootPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// .env values sit between the config file and the real environment.
	// They are set on this viper instance only, never exported.
	for _, key := range configKeys {
		envKey := EnvPrefix + "_" + strings.ToUpper(key)
		if _, ok := os.LookupEnv(envKey); ok {
			continue
		}
		if value, ok := dotenv[envKey]; ok {
			v.Set(key, value)
		}
	}

	path := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read %s.yaml: %w", FileName, err)
		}
	} else {
		path = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Path = path
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readDotEnv(rootPath string) (map[string]string, error) {
	values, err := godotenv.Read(filepath.Join(rootPath, ".env"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return values, nil
}

// Validate checks values viper cannot type-check.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, scan.DefaultPattern); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1, got %d", c.Concurrency)
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q (supported: text, json, yaml)", c.Format)
	}
	return nil
}
