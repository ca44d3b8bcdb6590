package dynarray

import "fmt"

// DefaultChunkSize is the default number of slots per arena chunk.
const DefaultChunkSize = 1 << 10

// chunk represents a single slab of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // next free slot within buf
}

// Arena is a chunked bump allocator of T slots. Not goroutine-safe; wrap its
// ArenaAllocator in a SyncAllocator to share it.
//
// Slots are typed, so the garbage collector sees any pointers stored in them.
// Individual slots are never freed: Reset reclaims everything at once.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	cur       int // index of the chunk the fast path bumps from
}

// NewArena creates a new Arena with the specified chunk size in slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocSlots returns n consecutive slots from the arena. The slots may hold
// values left over from before a Reset. Returns nil if n <= 0.
func (a *Arena[T]) AllocSlots(n int) []T {
	if n <= 0 {
		return nil
	}
	a.panicIfReleased()

	// Fast path: bump within the current chunk
	c := &a.chunks[a.cur]
	if c.offset+n <= len(c.buf) {
		return c.take(n)
	}

	return a.allocSlotsSlow(n)
}

// allocSlotsSlow looks for room in the chunks after the current one, which
// are only partly used after a Reset, before growing a new chunk.
func (a *Arena[T]) allocSlotsSlow(n int) []T {
	for i := a.cur + 1; i < len(a.chunks); i++ {
		if a.chunks[i].offset+n <= len(a.chunks[i].buf) {
			a.cur = i
			return a.chunks[i].take(n)
		}
	}
	a.grow(n)
	return a.chunks[a.cur].take(n)
}

func (c *chunk[T]) take(n int) []T {
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset]
}

// EnsureCapacity makes the next AllocSlots(n) a bump within the current
// chunk, growing a chunk of at least n slots when the current one is short.
// It lets a caller that knows a reservation ahead of time keep it contiguous
// with nothing else in its chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	if c := &a.chunks[a.cur]; len(c.buf)-c.offset < n {
		a.grow(n)
	}
}

// Reset makes every slot available again but keeps the chunks for reuse.
// Slots handed out earlier must no longer be used. Their contents are
// cleared so the arena does not keep stale values reachable.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	a.cur = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.cur = 0
}

// Released reports whether Release has been called.
func (a *Arena[T]) Released() bool {
	return a.chunks == nil
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.cur = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("dynarray: arena use after Release()")
	}
}

// ArenaAllocator serves vector storage from an Arena. Deallocate is a no-op:
// buffers given up by a growing vector stay in the arena until Reset, so it
// suits vectors that are reserved up front or live no longer than the arena's
// reset cycle.
type ArenaAllocator[T any] struct {
	arena *Arena[T]
}

// NewArenaAllocator returns an allocator drawing from a. A nil arena gets a
// fresh one with DefaultChunkSize.
func NewArenaAllocator[T any](a *Arena[T]) *ArenaAllocator[T] {
	if a == nil {
		a = NewArena[T](0)
	}
	return &ArenaAllocator[T]{arena: a}
}

// Allocate bumps n slots out of the arena. A released arena, or a chunk the
// runtime cannot size, fails with ErrAllocation instead of panicking.
func (aa *ArenaAllocator[T]) Allocate(n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrNegativeCount, n)
	}
	if aa.arena.Released() {
		return nil, fmt.Errorf("%w: arena released", ErrAllocation)
	}
	defer recoverAllocation(&err, n)
	return aa.arena.AllocSlots(n), nil
}

// Deallocate does nothing; the arena reclaims slots on Reset.
func (aa *ArenaAllocator[T]) Deallocate([]T, int) {}

// MaxSize returns the number of T values addressable by an int byte count.
func (aa *ArenaAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}

// Arena returns the arena backing the allocator.
func (aa *ArenaAllocator[T]) Arena() *Arena[T] {
	return aa.arena
}
