// Package config loads runtime settings from flags, environment, an optional
// YAML file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables, e.g. DICETRAY_DSN.
const EnvPrefix = "DICETRAY"

// Config holds runtime settings and flags.
type Config struct {
	DSN            string `mapstructure:"dsn"`
	Seed           string `mapstructure:"seed"`
	Theme          string `mapstructure:"theme"`
	History        bool   `mapstructure:"history"`
	ClearAfterRoll bool   `mapstructure:"clear_after_roll"`
	MigrationsDir  string `mapstructure:"migrations_dir"`
	LogFile        string `mapstructure:"log_file"`
	Verbose        bool   `mapstructure:"verbose"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dsn", "")
	v.SetDefault("seed", "")
	v.SetDefault("theme", "catppuccin")
	v.SetDefault("history", false)
	v.SetDefault("clear_after_roll", true)
	v.SetDefault("migrations_dir", "")
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)
}

// Load reads .env (if present), then cfgFile or $HOME/.dicetray.yaml (if
// present), then DICETRAY_* environment variables into v and decodes the result.
// DATABASE_URL is honoured as a fallback for dsn.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".dicetray")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DATABASE_URL")
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings that cannot work together.
func (c Config) Validate() error {
	if c.History && c.DSN == "" {
		return errors.New("history requires a dsn")
	}
	return nil
}

// HistoryEnabled reports whether rolls should be stored.
func (c Config) HistoryEnabled() bool { return c.History && c.DSN != "" }
