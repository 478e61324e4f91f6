package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/lvpack/internal/report"
	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// failingCloser accepts writes and fails on Close, like a file whose final
// flush does not reach the disk.
type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errDiskFull
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	var w failingCloser
	inst := report.Instance{WeightLimit: 5, Items: []knapsack.Item{{Weight: 2, Value: 3}}}

	err := writeAndClose(&w, inst)
	require.ErrorIs(t, err, errDiskFull)
	assert.True(t, w.closed)
	assert.Contains(t, w.String(), "weight_limit: 5")
}

type nopCloser struct{ bytes.Buffer }

func (*nopCloser) Close() error { return nil }

func TestWriteAndClose_OK(t *testing.T) {
	var w nopCloser
	require.NoError(t, writeAndClose(&w, report.Instance{Items: []knapsack.Item{{Weight: 1, Value: 1}}}))
	assert.Contains(t, w.String(), "items:")
}
