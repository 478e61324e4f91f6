package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvpack/internal/report"
	"github.com/katalvlaran/lvpack/itemgen"
	"github.com/spf13/cobra"
)

func newGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Write a random item file",
		Long: `Generate random items (weight and value in [1,100]) and write them as a
YAML item file that "lvpack solve --file" accepts.

Examples:
  lvpack generate -n 15 -s 3 -w 80 -O items.yaml
  lvpack generate -n 10 > items.yaml`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}

	f := cmd.Flags()
	f.IntP("items", "n", 20, "number of items")
	f.Int64P("limit", "w", 100, "weight limit recorded in the file")
	f.Int64P("seed", "s", 0, "seed (0 = fixed default)")
	f.StringP("output", "O", "", "output file (default stdout)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	items, err := itemgen.Random(a.cfg.Items, itemgen.WithSeed(a.cfg.Seed))
	if err != nil {
		return err
	}
	inst := report.Instance{WeightLimit: a.cfg.WeightLimit, Items: items}

	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if path == "" {
		return report.WriteInstance(cmd.OutOrStdout(), inst)
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create item file: %w", err)
	}
	if err := writeAndClose(fh, inst); err != nil {
		return fmt.Errorf("write item file: %w", err)
	}
	a.logger.Info("wrote item file", "path", path, "items", len(items))

	return nil
}

// writeAndClose writes inst to w and closes it, returning the first error.
// A failed close means the file may be incomplete.
func writeAndClose(w io.WriteCloser, inst report.Instance) error {
	err := report.WriteInstance(w, inst)
	if cerr := w.Close(); err == nil {
		err = cerr
	}

	return err
}
