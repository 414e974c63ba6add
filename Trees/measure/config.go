package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "MEASURE"

const (
	defaultN         uint32 = 100000
	defaultOrder            = "sorted"
	defaultOps              = "query"
	defaultBenchTime        = "1s"
)

var (
	ErrInvalidN     = errors.New("n must be positive")
	ErrInvalidOrder = errors.New("order must be one of sorted, reverse, random")
	ErrInvalidOps   = errors.New("ops must be one of query, insert, remove")
)

// Config is the merged view of defaults, the config file, MEASURE_* variables and flags.
type Config struct {
	N         uint32 `mapstructure:"n"`
	Order     string `mapstructure:"order"`
	Ops       string `mapstructure:"ops"`
	Seed      int64  `mapstructure:"seed"`
	BenchTime string `mapstructure:"benchtime"`
	Verbose   bool   `mapstructure:"verbose"`
}

func (c *Config) Validate() error {
	if c.N == 0 {
		return ErrInvalidN
	}
	switch c.Order {
	case "sorted", "reverse", "random":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrder, c.Order)
	}
	switch c.Ops {
	case "query", "insert", "remove":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOps, c.Ops)
	}
	return nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("n", defaultN)
	v.SetDefault("order", defaultOrder)
	v.SetDefault("ops", defaultOps)
	v.SetDefault("seed", 0)
	v.SetDefault("benchtime", defaultBenchTime)
	v.SetDefault("verbose", false)
}

// loadConfig builds the Config for cmd. Flags set on the command line win
// over the environment, which wins over the file named by --config.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	applyDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.LocalFlags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) logger(cmd *cobra.Command) *slog.Logger {
	lvl := slog.LevelInfo
	if c.Verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}
