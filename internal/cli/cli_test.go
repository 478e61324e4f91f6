package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpack/internal/cli"
	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/internal/report"
	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree in a fresh working directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

type yamlReport struct {
	WeightLimit int64 `yaml:"weight_limit"`
	ItemCount   int   `yaml:"item_count"`
	Runs        []struct {
		Strategy string            `yaml:"strategy"`
		Optimal  bool              `yaml:"optimal"`
		Solution knapsack.Solution `yaml:"solution"`
	} `yaml:"runs"`
}

func TestVersion(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lvpack "), out)
}

func TestGenerate_WritesItemFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")

	out, _, err := run(t, "generate", "-n", "6", "-s", "3", "-w", "40", "-O", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	inst, err := report.ReadInstance(fh)
	require.NoError(t, err)
	assert.Equal(t, int64(40), inst.WeightLimit)
	assert.Len(t, inst.Items, 6)
}

func TestGenerate_StdoutIsDeterministic(t *testing.T) {
	t.Chdir(t.TempDir())
	first, _, err := run(t, "generate", "-n", "5", "-s", "11")
	require.NoError(t, err)
	second, _, err := run(t, "generate", "-n", "5", "-s", "11")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "items:")
}

func TestSolve_FileYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")
	body := "weight_limit: 5\nitems:\n  - {weight: 2, value: 3}\n  - {weight: 3, value: 4}\n  - {weight: 4, value: 5}\n  - {weight: 5, value: 6}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, _, err := run(t, "solve", "-f", path, "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(5), rep.WeightLimit)
	assert.Equal(t, 4, rep.ItemCount)
	require.Len(t, rep.Runs, 4)
	for _, r := range rep.Runs {
		assert.Equal(t, int64(7), r.Solution.TotalValue, r.Strategy)
		assert.Equal(t, int64(5), r.Solution.TotalWeight, r.Strategy)
	}
	assert.False(t, rep.Runs[3].Optimal)
}

func TestSolve_LimitFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")
	body := "weight_limit: 5\nitems:\n  - {weight: 2, value: 3}\n  - {weight: 3, value: 4}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, _, err := run(t, "solve", "-f", path, "-w", "1", "--strategy", "exhaustive", "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(1), rep.WeightLimit)
	require.Len(t, rep.Runs, 1)
	assert.True(t, rep.Runs[0].Solution.IsEmpty())
}

func TestSolve_FileZeroLimitIsKept(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight_limit: 0\nitems:\n  - {weight: 2, value: 3}\n"), 0o644))

	out, _, err := run(t, "solve", "-f", path, "--strategy", "exhaustive", "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(0), rep.WeightLimit)
	require.Len(t, rep.Runs, 1)
	assert.True(t, rep.Runs[0].Solution.IsEmpty())
	assert.Equal(t, int64(0), rep.Runs[0].Solution.TotalValue)
}

func TestSolve_FileWithoutLimitUsesConfigured(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {weight: 2, value: 3}\n"), 0o644))

	out, _, err := run(t, "solve", "-f", path, "--strategy", "exhaustive", "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(100), rep.WeightLimit)
	assert.Equal(t, int64(3), rep.Runs[0].Solution.TotalValue)
}

func TestSolve_EnvLimitOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight_limit: 5\nitems:\n  - {weight: 2, value: 3}\n"), 0o644))
	t.Setenv("LVPACK_WEIGHT_LIMIT", "1")

	out, _, err := run(t, "solve", "-f", path, "--strategy", "exhaustive", "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(1), rep.WeightLimit)
	assert.True(t, rep.Runs[0].Solution.IsEmpty())
}

func TestSolve_ConfigFileDoesNotOverrideItemFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lvpack.yml"), []byte("weight_limit: 1\n"), 0o644))
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight_limit: 5\nitems:\n  - {weight: 2, value: 3}\n"), 0o644))

	out, _, err := run(t, "solve", "-f", path, "--strategy", "exhaustive", "-o", "yaml")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(5), rep.WeightLimit)
	assert.Equal(t, int64(3), rep.Runs[0].Solution.TotalValue)
}

func TestGenerate_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, _, err := run(t, "generate", "-n", "3", "-O", filepath.Join(dir, "missing", "items.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_SelectedStrategiesText(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "solve", "-n", "8", "-s", "1", "-w", "50", "--strategy", "exhaustive,ratio")
	require.NoError(t, err)

	assert.Contains(t, out, "Instance: 8 items, weight limit 50")
	assert.Contains(t, out, "exhaustive (optimal)")
	assert.Contains(t, out, "ratio (heuristic)")
	assert.NotContains(t, out, "threaded")
}

func TestSolve_BadStrategy(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := run(t, "solve", "--strategy", "dynamic")
	require.Error(t, err)
	assert.ErrorIs(t, err, knapsack.ErrBadStrategyName)
}

func TestSolve_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := run(t, "solve", "-f", "nope.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_JSONDebugLogs(t *testing.T) {
	t.Chdir(t.TempDir())
	_, logs, err := run(t, "solve", "-n", "6", "--strategy", "ratio", "-l", "debug", "--log-format", "json")
	require.NoError(t, err)

	var sawBound bool
	for _, line := range strings.Split(strings.TrimSpace(logs), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "search bound" {
			sawBound = true
		}
	}
	assert.True(t, sawBound, logs)
}

func TestSolve_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := "items: 5\nweight_limit: 30\nstrategies: [threaded]\nformat: yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lvpack.yml"), []byte(cfg), 0o644))
	t.Setenv("LVPACK_WEIGHT_LIMIT", "45")

	out, _, err := run(t, "solve")
	require.NoError(t, err)

	var rep yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 5, rep.ItemCount)
	assert.Equal(t, int64(45), rep.WeightLimit)
	require.Len(t, rep.Runs, 1)
	assert.Equal(t, "threaded", rep.Runs[0].Strategy)
}

func TestSolve_InvalidConfigValues(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := run(t, "solve", "--overflow", "maybe", "-o", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrOverflow)
	assert.ErrorIs(t, err, config.ErrFormat)
}
