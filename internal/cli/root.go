// Package cli implements the lvpack command-line interface.
//
// Configuration sources, highest priority first:
//  1. command-line flags
//  2. LVPACK_* environment variables (LVPACK_WEIGHT_LIMIT, LVPACK_LOG_LEVEL, ...)
//  3. the file given by --config, or .lvpack.yml in the working directory
//  4. built-in defaults
//
// An item file passed to solve sits between 2 and 3 for weight_limit: its
// value beats the config file and defaults, but --limit and
// LVPACK_WEIGHT_LIMIT replace it.
package cli

import (
	"log/slog"

	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"items":      "items",
	"limit":      "weight_limit",
	"seed":       "seed",
	"file":       "file",
	"strategy":   "strategies",
	"workers":    "workers",
	"overflow":   "overflow",
	"format":     "format",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// app carries the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the lvpack command tree. Each call returns an
// independent tree with its own Viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "lvpack",
		Short: "Solve 0/1 knapsack instances with exhaustive and greedy strategies",
		Long: `lvpack solves the 0/1 knapsack problem: pick the subset of items with the
highest total value whose total weight stays within a limit.

Strategies:
  exhaustive      sequential enumeration (optimal)
  threaded        one task per subset size on a bounded pool (optimal)
  data-parallel   parallel-for over subset sizes (optimal)
  ratio           greedy by value/weight ratio (fast, approximate)

Quick Start:
  lvpack solve -n 20 -w 100 -s 7        Random instance, all strategies
  lvpack generate -n 15 -O items.yaml   Write a reusable item file
  lvpack solve -f items.yaml -o yaml    Solve a file, YAML report`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .lvpack.yml)")
	pf.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", logging.FormatText, "log format (text, json)")

	root.AddCommand(
		newSolveCommand(a),
		newGenerateCommand(a),
		newVersionCommand(),
	)

	return root
}

// setup binds the flags of the running command, loads the configuration and
// builds the logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	if err := config.Bind(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg, a.logger = cfg, logger
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	return nil
}

// Execute runs the lvpack command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
