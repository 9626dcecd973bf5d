package dbexec

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds connection and logging settings.
type Config struct {
	Dialect       string        `mapstructure:"dialect"`
	DSN           string        `mapstructure:"dsn"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	LogLevel      string        `mapstructure:"log_level"`
	MaxOpenConns  int           `mapstructure:"max_open_conns"`
}

// LoadConfig reads configuration with the precedence
// env (SQLTREE_*) > config file > defaults. path may be empty.
func LoadConfig(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// NewViper returns a viper instance with defaults, SQLTREE_* environment
// overrides and, when path is not empty, the config file at path. Callers may
// bind flags on it before calling Decode.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("SQLTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers every key so environment overrides are seen by
// Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "postgres")
	v.SetDefault("dsn", "")
	v.SetDefault("slow_threshold", 200*time.Millisecond)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_open_conns", 10)
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the dialect name and log level.
func (c *Config) Validate() error {
	if _, err := Dialect(c.Dialect); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxOpenConns < 0 {
		return fmt.Errorf("max_open_conns must not be negative, got %d", c.MaxOpenConns)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
