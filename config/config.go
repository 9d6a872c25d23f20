// SPDX-License-Identifier: MIT

// Package config reads cone jobs from YAML.
//
// A job names the lattice (diagonal Gram entries), the weight and the cone
// options:
//
//	gram: [2, 2]
//	weight: "21/2"
//	initial_bound: "3"
//	primitive: true
//
// Rationals are strings ("21/2", "3", "0.5"). The modular-forms
// representation itself is supplied by the caller; Form only builds the
// discriminant-form side.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heegner/cone"
	"github.com/katalvlaran/heegner/weilrep"
)

// ErrInvalidJob is returned by Validate and the accessors for unusable jobs.
var ErrInvalidJob = errors.New("config: invalid job")

// Job is one cone computation.
type Job struct {
	Gram         []int64 `yaml:"gram"`
	Weight       string  `yaml:"weight"`
	Bound        string  `yaml:"bound,omitempty"` // empty: computed
	InitialBound string  `yaml:"initial_bound"`
	Primitive    bool    `yaml:"primitive"`
	Verbose      bool    `yaml:"verbose"`
	MaxIndex     int64   `yaml:"max_index,omitempty"`
}

// DefaultJob returns a job with the cone defaults and no lattice.
func DefaultJob() *Job {
	return &Job{
		InitialBound: big.NewRat(cone.DefaultInitialBound, 1).RatString(),
		Primitive:    cone.DefaultPrimitive,
		Verbose:      cone.DefaultVerbose,
		MaxIndex:     cone.DefaultMaxIndex,
	}
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job: %w", err)
	}

	return Parse(data)
}

// Parse decodes a job over the defaults and validates it.
func Parse(data []byte) (*Job, error) {
	job := DefaultJob()
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Save writes the job as YAML, creating parent directories.
func (j *Job) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}

	return nil
}

// Validate checks that every field can be turned into cone inputs.
func (j *Job) Validate() error {
	if _, err := j.Form(); err != nil {
		return err
	}
	if _, err := j.WeightRat(); err != nil {
		return err
	}
	if _, err := positive("initial_bound", j.InitialBound); err != nil {
		return err
	}
	if j.Bound != "" {
		if _, err := positive("bound", j.Bound); err != nil {
			return err
		}
	}
	if j.MaxIndex < 0 {
		return fmt.Errorf("max_index %d is negative: %w", j.MaxIndex, ErrInvalidJob)
	}

	return nil
}

// Form builds the discriminant form of diag(gram...).
func (j *Job) Form() (*weilrep.DiscriminantForm, error) {
	f, err := weilrep.NewDiagonal(j.Gram...)
	if err != nil {
		return nil, fmt.Errorf("gram %v: %w: %w", j.Gram, ErrInvalidJob, err)
	}

	return f, nil
}

// WeightRat parses the weight.
func (j *Job) WeightRat() (*big.Rat, error) {
	return positive("weight", j.Weight)
}

// Options translates the job into cone options.
func (j *Job) Options() ([]cone.Option, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	ib, _ := positive("initial_bound", j.InitialBound)
	opts := []cone.Option{
		cone.WithInitialBound(ib),
		cone.WithPrimitive(j.Primitive),
		cone.WithVerbose(j.Verbose),
		cone.WithMaxIndex(j.MaxIndex),
	}
	if j.Bound != "" {
		b, _ := positive("bound", j.Bound)
		opts = append(opts, cone.WithBound(b))
	}

	return opts, nil
}

func positive(field, s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%s %q is not a rational: %w", field, s, ErrInvalidJob)
	}
	if r.Sign() <= 0 {
		return nil, fmt.Errorf("%s %s must be positive: %w", field, s, ErrInvalidJob)
	}

	return r, nil
}
