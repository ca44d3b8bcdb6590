package scenario

import (
	"fmt"
	"log/slog"

	"github.com/pavanmanishd/dynarray"
)

// Event kinds.
const (
	EventInit    = "init"
	EventReserve = "reserve"
	EventGrow    = "grow"
	EventShrink  = "shrink"
)

// Event is one change of capacity.
type Event struct {
	Kind   string
	Step   int // append index for grow events, -1 otherwise
	Len    int // length after the operation
	OldCap int
	NewCap int
}

func (e Event) String() string {
	if e.Kind == EventGrow {
		return fmt.Sprintf("%-7s append #%d: len %d, cap %d -> %d", e.Kind, e.Step, e.Len, e.OldCap, e.NewCap)
	}
	return fmt.Sprintf("%-7s len %d, cap %d -> %d", e.Kind, e.Len, e.OldCap, e.NewCap)
}

// Trace is the outcome of replaying a Scenario.
type Trace struct {
	Scenario Scenario
	Events   []Event
	Caps     []float64 // capacity after every append
	Len      int
	Cap      int
	Metrics  dynarray.AllocatorMetrics
	Arena    *dynarray.ArenaMetrics // nil unless the scenario ran on an arena
}

// Growths returns how many events were caused by appends.
func (t *Trace) Growths() int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == EventGrow {
			n++
		}
	}
	return n
}

// Stranded returns the arena slots handed out but no longer owned by the
// vector. They come back only when the arena is reset.
func (t *Trace) Stranded() int {
	if t.Arena == nil {
		return 0
	}
	return t.Arena.SizeInUse - t.Cap
}

// Run replays s on a vector of int64 and records every capacity change.
// Allocator and arena metrics are taken before the vector is released.
func Run(s Scenario, log *slog.Logger) (*Trace, error) {
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	inner, arena, err := newAllocator(s)
	if err != nil {
		return nil, err
	}
	ca := dynarray.NewCountingAllocator(inner)
	log.Debug("starting scenario", "name", s.Name, "allocator", s.Allocator,
		"initial_len", s.InitialLen, "reserve", s.Reserve, "appends", s.Appends)

	v, err := dynarray.WithLen(s.InitialLen, dynarray.WithAllocator[int64](ca))
	if err != nil {
		return nil, fmt.Errorf("initial length %d: %w", s.InitialLen, err)
	}
	defer v.Release()

	tr := &Trace{Scenario: s, Caps: make([]float64, 0, s.Appends)}
	record := func(kind string, step, oldCap int) {
		if v.Cap() == oldCap {
			return
		}
		e := Event{Kind: kind, Step: step, Len: v.Len(), OldCap: oldCap, NewCap: v.Cap()}
		tr.Events = append(tr.Events, e)
		log.Debug("capacity changed", "kind", kind, "step", step, "len", e.Len, "old_cap", oldCap, "new_cap", e.NewCap)
	}
	record(EventInit, -1, 0)

	if s.Reserve > 0 {
		if arena != nil {
			arena.EnsureCapacity(s.Reserve)
		}
		old := v.Cap()
		if err := v.Reserve(s.Reserve); err != nil {
			return nil, fmt.Errorf("reserve %d: %w", s.Reserve, err)
		}
		record(EventReserve, -1, old)
	}

	for i := 0; i < s.Appends; i++ {
		old := v.Cap()
		if _, err := v.Append(int64(i)); err != nil {
			log.Warn("append failed", "step", i, "len", v.Len(), "error", err)
			return nil, fmt.Errorf("append #%d: %w", i, err)
		}
		record(EventGrow, i, old)
		tr.Caps = append(tr.Caps, float64(v.Cap()))
	}

	if s.ShrinkAfter {
		old := v.Cap()
		if err := v.ShrinkToFit(); err != nil {
			return nil, fmt.Errorf("shrink: %w", err)
		}
		record(EventShrink, -1, old)
	}

	tr.Len, tr.Cap = v.Len(), v.Cap()
	tr.Metrics = ca.Metrics()
	if arena != nil {
		m := arena.Metrics()
		tr.Arena = &m
		log.Debug("arena usage", "in_use", m.SizeInUse, "capacity", m.Capacity,
			"chunks", m.NumChunks, "stranded", tr.Stranded())
	}
	log.Info("scenario finished", "name", s.Name, "len", tr.Len, "cap", tr.Cap,
		"growths", tr.Growths(), "alloc_calls", tr.Metrics.AllocCalls)
	return tr, nil
}

// newAllocator builds the allocator s names. The arena is returned too when
// there is one, so its usage can be read back after the run.
func newAllocator(s Scenario) (dynarray.Allocator[int64], *dynarray.Arena[int64], error) {
	switch s.Allocator {
	case AllocArena:
		arena := dynarray.NewArena[int64](s.ArenaChunk)
		return dynarray.NewArenaAllocator(arena), arena, nil
	case AllocMmap:
		m, err := dynarray.NewMmapAllocator[int64]()
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	default:
		return dynarray.HeapAllocator[int64]{}, nil, nil
	}
}

// GrowthSequence returns the distinct capacities an empty heap vector passes
// through while n elements are appended one at a time.
func GrowthSequence(n int) ([]int, error) {
	v := dynarray.New[struct{}]()
	var caps []int
	for i := 0; i < n; i++ {
		old := v.Cap()
		if _, err := v.Append(struct{}{}); err != nil {
			return caps, err
		}
		if v.Cap() != old {
			caps = append(caps, v.Cap())
		}
	}
	return caps, nil
}
