// Package scenario describes append workloads for a Vector and replays them
// while recording every capacity change.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Allocator kinds understood by Run.
const (
	AllocHeap  = "heap"
	AllocArena = "arena"
	AllocMmap  = "mmap"
)

const (
	DefaultAppends    = 5
	DefaultInitialLen = 5
	DefaultArenaChunk = 4096
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is one replayable workload.
type Scenario struct {
	Name        string `yaml:"name"`
	InitialLen  int    `yaml:"initial_len"`
	Reserve     int    `yaml:"reserve"`
	Appends     int    `yaml:"appends"`
	Allocator   string `yaml:"allocator"`
	ArenaChunk  int    `yaml:"arena_chunk,omitempty"`
	ShrinkAfter bool   `yaml:"shrink_after,omitempty"`
}

// File is the on-disk form of a set of scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default is the five-defaults-then-five-appends workload.
func Default() Scenario {
	return Scenario{
		Name:       "default",
		InitialLen: DefaultInitialLen,
		Appends:    DefaultAppends,
		Allocator:  AllocHeap,
	}
}

func DefaultFile() *File {
	return &File{Scenarios: []Scenario{
		Default(),
		{Name: "from-empty", Appends: 100, Allocator: AllocHeap},
		{Name: "reserved", Reserve: 64, Appends: 64, Allocator: AllocHeap},
		{Name: "arena", Appends: 1000, Allocator: AllocArena, ArenaChunk: DefaultArenaChunk},
		{Name: "mmap-shrink", Appends: 10000, Allocator: AllocMmap, ShrinkAfter: true},
	}}
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i := range f.Scenarios {
		f.Scenarios[i].applyDefaults()
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: scenario %d: %w", path, i, err)
		}
	}
	return &f, nil
}

func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find returns the scenario called name.
func (f *File) Find(name string) (Scenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func (s *Scenario) applyDefaults() {
	if s.Allocator == "" {
		s.Allocator = AllocHeap
	}
	if s.Allocator == AllocArena && s.ArenaChunk == 0 {
		s.ArenaChunk = DefaultArenaChunk
	}
}

// Validate reports the first field that cannot be replayed.
func (s Scenario) Validate() error {
	switch {
	case s.InitialLen < 0:
		return fmt.Errorf("%w: initial_len %d is negative", ErrInvalid, s.InitialLen)
	case s.Reserve < 0:
		return fmt.Errorf("%w: reserve %d is negative", ErrInvalid, s.Reserve)
	case s.Appends < 0:
		return fmt.Errorf("%w: appends %d is negative", ErrInvalid, s.Appends)
	case s.ArenaChunk < 0:
		return fmt.Errorf("%w: arena_chunk %d is negative", ErrInvalid, s.ArenaChunk)
	}
	switch s.Allocator {
	case AllocHeap, AllocArena, AllocMmap:
		return nil
	default:
		return fmt.Errorf("%w: unknown allocator %q", ErrInvalid, s.Allocator)
	}
}
