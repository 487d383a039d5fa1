// Package config loads CLI configuration from files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the lectio CLI. Values come
// from built-in defaults, an optional YAML config file, and LECTIO_*
// environment variables, in ascending order of precedence.
type Config struct {
	DB struct {
		Path string
	}
	Packs struct {
		Dir string
	}
	Search struct {
		Limit int
	}
	Fetch struct {
		Timeout time.Duration
		RPS     float64
	}
	Export struct {
		Dir string
	}
}

// Load reads the configuration. With an explicit file the file must
// exist; with an empty path the default locations (~/.config/lectio,
// then the working directory) are searched and a missing file falls
// back to defaults and environment variables. Environment variables use
// the LECTIO_ prefix with underscores for nesting, e.g. LECTIO_DB_PATH.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("lectio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range defaultConfigDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := DefaultDataDir()
	v.SetDefault("db.path", filepath.Join(dataDir, "lectio.db"))
	v.SetDefault("packs.dir", filepath.Join(dataDir, "packs"))
	v.SetDefault("search.limit", 120)
	v.SetDefault("fetch.timeout", "10s")
	v.SetDefault("fetch.rps", 1.0)
	v.SetDefault("export.dir", filepath.Join(dataDir, "export"))
}

// DefaultDataDir is ~/.lectio, or the working directory when the home
// directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".lectio")
}

func defaultConfigDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append([]string{filepath.Join(home, ".config", "lectio")}, dirs...)
	}
	return dirs
}
