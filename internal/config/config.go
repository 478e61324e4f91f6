// Package config loads the lvpack CLI configuration using Viper, merging
// command-line flags, LVPACK_* environment variables and an optional
// .lvpack.yml file (highest priority first).
//
// Keys:
//
//	items         number of random items to generate       (LVPACK_ITEMS)
//	weight_limit  knapsack capacity                        (LVPACK_WEIGHT_LIMIT)
//	seed          RNG seed for generated items             (LVPACK_SEED)
//	file          YAML item file; overrides items/seed     (LVPACK_FILE)
//	strategies    strategy names or "all"                  (LVPACK_STRATEGIES)
//	workers       parallel worker bound, 0 = GOMAXPROCS    (LVPACK_WORKERS)
//	overflow      ratio heuristic policy: skip or stop     (LVPACK_OVERFLOW)
//	format        report format: text or yaml              (LVPACK_FORMAT)
//	log.level     debug, info, warn, error                 (LVPACK_LOG_LEVEL)
//	log.format    text or json                             (LVPACK_LOG_FORMAT)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpack/internal/logging"
	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// EnvPrefix is the environment variable prefix bound by Bind.
const EnvPrefix = "LVPACK"

// AllStrategies expands to every strategy.
const AllStrategies = "all"

// Sentinel validation errors.
var (
	ErrItemCount   = errors.New("config: items must be non-negative")
	ErrWeightLimit = errors.New("config: weight_limit must be non-negative")
	ErrWorkers     = errors.New("config: workers must be non-negative")
	ErrOverflow    = errors.New("config: overflow must be skip or stop")
	ErrFormat      = errors.New("config: format must be text or yaml")
	ErrStrategies  = errors.New("config: no strategy selected")
)

// Config is the resolved CLI configuration.
type Config struct {
	Items       int       `mapstructure:"items"`
	WeightLimit int64     `mapstructure:"weight_limit"`
	Seed        int64     `mapstructure:"seed"`
	File        string    `mapstructure:"file"`
	Strategies  []string  `mapstructure:"strategies"`
	Workers     int       `mapstructure:"workers"`
	Overflow    string    `mapstructure:"overflow"`
	Format      string    `mapstructure:"format"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("items", 20)
	v.SetDefault("weight_limit", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("file", "")
	v.SetDefault("strategies", []string{AllStrategies})
	v.SetDefault("workers", 0)
	v.SetDefault("overflow", "skip")
	v.SetDefault("format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
}

// Bind enables LVPACK_* environment overrides and points v at the config
// file: path when non-empty, otherwise .lvpack.yml in the working directory.
// A missing default file is not an error; a missing explicit file is.
func Bind(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".lvpack")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", describe(path), err)
	}

	return nil
}

func describe(path string) string {
	if path == "" {
		return ".lvpack.yml"
	}
	return path
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	if c.Items < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrItemCount, c.Items))
	}
	if c.WeightLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrWeightLimit, c.WeightLimit))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrWorkers, c.Workers))
	}
	if _, perr := c.OverflowPolicy(); perr != nil {
		err = multierr.Append(err, perr)
	}
	if c.Format != "text" && c.Format != "yaml" {
		err = multierr.Append(err, fmt.Errorf("%w: got %q", ErrFormat, c.Format))
	}
	if _, serr := c.SelectedStrategies(); serr != nil {
		err = multierr.Append(err, serr)
	}
	if _, lerr := logging.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, lerr)
	}

	return err
}

// OverflowPolicy parses the overflow key.
func (c *Config) OverflowPolicy() (knapsack.OverflowPolicy, error) {
	switch strings.ToLower(c.Overflow) {
	case "", "skip":
		return knapsack.SkipOverflow, nil
	case "stop":
		return knapsack.StopAtOverflow, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrOverflow, c.Overflow)
	}
}

// SelectedStrategies resolves the strategies key, expanding "all" and
// dropping duplicates while keeping first-seen order.
func (c *Config) SelectedStrategies() ([]knapsack.Strategy, error) {
	var (
		out  []knapsack.Strategy
		seen = make(map[knapsack.Strategy]bool, 4)
		err  error
	)
	add := func(s knapsack.Strategy) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, raw := range c.Strategies {
		for _, name := range strings.Split(raw, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if name == AllStrategies {
				for _, s := range knapsack.Strategies() {
					add(s)
				}
				continue
			}
			s, perr := knapsack.ParseStrategy(name)
			if perr != nil {
				err = multierr.Append(err, perr)
				continue
			}
			add(s)
		}
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrStrategies
	}

	return out, nil
}

// SolveOptions converts the configuration into knapsack options.
func (c *Config) SolveOptions() ([]knapsack.Option, error) {
	policy, err := c.OverflowPolicy()
	if err != nil {
		return nil, err
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkers, c.Workers)
	}

	return []knapsack.Option{
		knapsack.WithWorkers(c.Workers),
		knapsack.WithOverflowPolicy(policy),
	}, nil
}
