// Package report runs knapsack strategies side by side and renders the
// comparison, and reads and writes the YAML item file used by the CLI.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvpack/knapsack"
	"gopkg.in/yaml.v3"
)

// ErrEmptyInstance is returned when an item file holds no items key.
var ErrEmptyInstance = errors.New("report: item file has no items")

// Instance is one knapsack problem: items plus weight limit.
//
// File format:
//
//	weight_limit: 100
//	items:
//	  - {weight: 2, value: 3}
//	  - {weight: 3, value: 4}
type Instance struct {
	WeightLimit int64           `yaml:"weight_limit"`
	Items       []knapsack.Item `yaml:"items"`

	// HasLimit reports whether ReadInstance found a weight_limit key.
	// An explicit zero limit is distinct from a missing one.
	HasLimit bool `yaml:"-"`
}

// instanceFile is the decoding shape of Instance; the pointer tells an
// absent weight_limit apart from zero.
type instanceFile struct {
	WeightLimit *int64          `yaml:"weight_limit"`
	Items       []knapsack.Item `yaml:"items"`
}

// ReadInstance decodes an Instance from r. Unknown keys are rejected.
// HasLimit is set when the file carries weight_limit, even when it is 0.
func ReadInstance(r io.Reader) (Instance, error) {
	var file instanceFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, ErrEmptyInstance
		}
		return Instance{}, fmt.Errorf("report: decode item file: %w", err)
	}
	if file.Items == nil {
		return Instance{}, ErrEmptyInstance
	}

	inst := Instance{Items: file.Items}
	if file.WeightLimit != nil {
		inst.WeightLimit = *file.WeightLimit
		inst.HasLimit = true
	}

	return inst, nil
}

// WriteInstance encodes inst as YAML to w.
func WriteInstance(w io.Writer, inst Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inst); err != nil {
		return fmt.Errorf("report: encode item file: %w", err)
	}

	return enc.Close()
}
