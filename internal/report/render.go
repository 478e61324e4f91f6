package report

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvpack/knapsack"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ANSI escape sequences used when writing to a terminal.
const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBold   = "\x1b[1m"
	ansiReset  = "\x1b[0m"
)

// Renderer writes comparison reports.
type Renderer struct {
	out     io.Writer
	color   bool
	printer *message.Printer
}

// NewRenderer returns a Renderer writing to out. Color is enabled only when
// out is a terminal and NO_COLOR is unset.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		color:   isTerminal(out) && os.Getenv("NO_COLOR") == "",
		printer: message.NewPrinter(language.English),
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// paint wraps s in the escape sequence when color is enabled.
func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}

	return code + s + ansiReset
}

// strategyLabel colors exhaustive strategies green and heuristics yellow.
func (r *Renderer) strategyLabel(s knapsack.Strategy) string {
	if s.IsExhaustive() {
		return r.paint(ansiGreen, s.String()+" (optimal)")
	}

	return r.paint(ansiYellow, s.String()+" (heuristic)")
}

// Text writes a human-readable report: the instance, the search bound, and
// each run with its items, totals and elapsed time.
func (r *Renderer) Text(inst Instance, runs []Run) error {
	var (
		p     = r.printer
		bound = SearchBound(inst)
		err   error
	)
	write := func(format string, args ...any) {
		if err == nil {
			_, err = p.Fprintf(r.out, format, args...)
		}
	}

	write("%s %d items, weight limit %d\n", r.paint(ansiBold, "Instance:"), len(inst.Items), inst.WeightLimit)
	for i, it := range inst.Items {
		write("    Item %d: %v\n", i, it)
	}
	write("Search bound: at most %d items, %d combinations\n", bound.MaxSubsetSize, bound.Combinations)

	for _, run := range runs {
		write("\n%s\n", r.strategyLabel(run.Strategy))
		if run.Solution.IsEmpty() {
			write("    no item fits\n")
		}
		for i, it := range run.Solution.Items {
			write("    Item %d: %v\n", i, it)
		}
		write("Total weight: %d\n", run.Solution.TotalWeight)
		write("Total value: %d\n", run.Solution.TotalValue)
		write("Elapsed: %s\n", run.Elapsed)
	}

	return err
}

// yamlRun is the YAML shape of a Run.
type yamlRun struct {
	Strategy  string            `yaml:"strategy"`
	Optimal   bool              `yaml:"optimal"`
	ElapsedMS float64           `yaml:"elapsed_ms"`
	Solution  knapsack.Solution `yaml:"solution"`
}

// yamlReport is the YAML shape of a whole report.
type yamlReport struct {
	WeightLimit   int64     `yaml:"weight_limit"`
	ItemCount     int       `yaml:"item_count"`
	MaxSubsetSize int       `yaml:"max_subset_size"`
	Combinations  uint64    `yaml:"combinations"`
	Runs          []yamlRun `yaml:"runs"`
}

// YAML writes a machine-readable report.
func (r *Renderer) YAML(inst Instance, runs []Run) error {
	bound := SearchBound(inst)
	rep := yamlReport{
		WeightLimit:   inst.WeightLimit,
		ItemCount:     len(inst.Items),
		MaxSubsetSize: bound.MaxSubsetSize,
		Combinations:  bound.Combinations,
		Runs:          make([]yamlRun, 0, len(runs)),
	}
	for _, run := range runs {
		sol := run.Solution
		if sol.Items == nil {
			sol.Items = []knapsack.Item{}
		}
		rep.Runs = append(rep.Runs, yamlRun{
			Strategy:  run.Strategy.String(),
			Optimal:   run.Strategy.IsExhaustive(),
			ElapsedMS: float64(run.Elapsed.Microseconds()) / 1000,
			Solution:  sol,
		})
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return enc.Close()
}
