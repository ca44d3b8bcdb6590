package dynarray

// ArenaMetrics is a snapshot of how an arena's slots are spent. Slots a
// vector gave up while growing still count as in use until Reset, so
// SizeInUse minus the live capacity is what the arena is holding on to.
type ArenaMetrics struct {
	SizeInUse   int // slots handed out since the last Reset
	Capacity    int // slots across all chunks
	NumChunks   int
	ChunkSize   int     // slots in a chunk grown for a small request
	Utilization float64 // SizeInUse over Capacity, 0 for a released arena
}

// Metrics walks the chunks once and returns the totals. A released arena
// reports zero everywhere except ChunkSize.
func (a *Arena[T]) Metrics() ArenaMetrics {
	m := ArenaMetrics{NumChunks: len(a.chunks), ChunkSize: a.chunkSize}
	for _, c := range a.chunks {
		m.SizeInUse += c.offset
		m.Capacity += len(c.buf)
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// SizeInUse returns the slots handed out since the last Reset.
func (a *Arena[T]) SizeInUse() int { return a.Metrics().SizeInUse }

// Capacity returns the slots across all chunks.
func (a *Arena[T]) Capacity() int { return a.Metrics().Capacity }

// Utilization returns SizeInUse over Capacity.
func (a *Arena[T]) Utilization() float64 { return a.Metrics().Utilization }

func (a *Arena[T]) NumChunks() int { return len(a.chunks) }

func (a *Arena[T]) ChunkSize() int { return a.chunkSize }

// CountingAllocator wraps another allocator and records how many slots pass
// through it. It is how capacity behaviour is audited: every reallocation of
// a vector shows up as one Allocate and one Deallocate.
type CountingAllocator[T any] struct {
	next Allocator[T]

	allocated    int
	deallocated  int
	allocCalls   int
	deallocCalls int
	peak         int
}

// NewCountingAllocator wraps next. A nil next counts HeapAllocator traffic.
func NewCountingAllocator[T any](next Allocator[T]) *CountingAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &CountingAllocator[T]{next: next}
}

// Allocate forwards to the wrapped allocator and counts the slots on success.
func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	buf, err := c.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.allocated += n
	c.allocCalls++
	if live := c.allocated - c.deallocated; live > c.peak {
		c.peak = live
	}
	return buf, nil
}

// Deallocate counts the slots and forwards to the wrapped allocator.
func (c *CountingAllocator[T]) Deallocate(buf []T, n int) {
	c.deallocated += n
	c.deallocCalls++
	c.next.Deallocate(buf, n)
}

// MaxSize returns the wrapped allocator's maximum.
func (c *CountingAllocator[T]) MaxSize() int {
	return c.next.MaxSize()
}

// Allocated returns the total slots handed out since the last ResetCounts.
func (c *CountingAllocator[T]) Allocated() int { return c.allocated }

// Deallocated returns the total slots given back since the last ResetCounts.
func (c *CountingAllocator[T]) Deallocated() int { return c.deallocated }

// Live returns the slots currently held by callers.
func (c *CountingAllocator[T]) Live() int { return c.allocated - c.deallocated }

// ResetCounts zeroes every counter.
func (c *CountingAllocator[T]) ResetCounts() {
	c.allocated, c.deallocated = 0, 0
	c.allocCalls, c.deallocCalls = 0, 0
	c.peak = 0
}

// Metrics returns a snapshot of the counters.
func (c *CountingAllocator[T]) Metrics() AllocatorMetrics {
	return AllocatorMetrics{
		Allocated:    c.allocated,
		Deallocated:  c.deallocated,
		Live:         c.Live(),
		Peak:         c.peak,
		AllocCalls:   c.allocCalls,
		DeallocCalls: c.deallocCalls,
	}
}

// AllocatorMetrics contains the counters of a CountingAllocator.
type AllocatorMetrics struct {
	Allocated    int // Slots handed out
	Deallocated  int // Slots given back
	Live         int // Allocated - Deallocated
	Peak         int // Highest Live value seen
	AllocCalls   int // Successful Allocate calls
	DeallocCalls int // Deallocate calls
}
