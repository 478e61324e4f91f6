package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/internal/report"
	"github.com/katalvlaran/lvpack/itemgen"
	"github.com/spf13/cobra"
)

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solve",
		Aliases: []string{"s"},
		Short:   "Solve a random or file-based knapsack instance",
		Long: `Solve a knapsack instance with one or more strategies and report each
solution with its total weight, total value and elapsed time.

Items come from --file when given, otherwise --items random items with
weight and value in [1,100] are drawn using --seed.

An item file's weight_limit (including 0) is used as written. --limit or
LVPACK_WEIGHT_LIMIT replaces it; a config file does not. A file without
weight_limit uses the configured limit.

Examples:
  lvpack solve                                  20 random items, limit 100, all strategies
  lvpack solve -n 24 -w 250 --strategy threaded --workers 4
  lvpack solve -f items.yaml --strategy exhaustive,ratio
  lvpack solve --overflow stop --strategy ratio Greedy that stops at the first misfit`,
		Args: cobra.NoArgs,
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.IntP("items", "n", 20, "number of random items to generate")
	f.Int64P("limit", "w", 100, "weight limit")
	f.Int64P("seed", "s", 0, "seed for random items (0 = fixed default)")
	f.StringP("file", "f", "", "YAML item file (overrides --items and --seed)")
	f.StringSlice("strategy", []string{"all"}, "strategies: all, exhaustive, threaded, data-parallel, ratio")
	f.Int("workers", 0, "parallel worker bound (0 = GOMAXPROCS)")
	f.String("overflow", "skip", "ratio heuristic policy for misfits: skip or stop")
	f.StringP("format", "o", "text", "report format: text or yaml")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	inst, err := a.instance(cmd)
	if err != nil {
		return err
	}
	strategies, err := a.cfg.SelectedStrategies()
	if err != nil {
		return err
	}
	opts, err := a.cfg.SolveOptions()
	if err != nil {
		return err
	}

	runs, err := report.Compare(a.logger, inst, strategies, opts...)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	r := report.NewRenderer(cmd.OutOrStdout())
	if a.cfg.Format == "yaml" {
		return r.YAML(inst, runs)
	}

	return r.Text(inst, runs)
}

// instance loads the item file or generates random items. A file's
// weight_limit, zero included, is used unless --limit or LVPACK_WEIGHT_LIMIT
// is set. A file without weight_limit takes the configured limit.
func (a *app) instance(cmd *cobra.Command) (report.Instance, error) {
	if a.cfg.File == "" {
		items, err := itemgen.Random(a.cfg.Items, itemgen.WithSeed(a.cfg.Seed))
		if err != nil {
			return report.Instance{}, err
		}
		a.logger.Debug("generated items", "count", len(items), "seed", a.cfg.Seed)

		return report.Instance{WeightLimit: a.cfg.WeightLimit, Items: items}, nil
	}

	fh, err := os.Open(a.cfg.File)
	if err != nil {
		return report.Instance{}, fmt.Errorf("open item file: %w", err)
	}
	defer fh.Close()

	inst, err := report.ReadInstance(fh)
	if err != nil {
		return report.Instance{}, fmt.Errorf("%s: %w", a.cfg.File, err)
	}
	_, envLimit := os.LookupEnv(config.EnvPrefix + "_WEIGHT_LIMIT")
	if !inst.HasLimit || envLimit || cmd.Flags().Changed("limit") {
		inst.WeightLimit = a.cfg.WeightLimit
	}
	a.logger.Debug("loaded item file", "path", a.cfg.File, "count", len(inst.Items))

	return inst, nil
}
