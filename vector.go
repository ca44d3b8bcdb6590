// Package dynarray implements a contiguous, growable array with explicit
// element lifecycles and pluggable allocators.
// Typical usage: pick an allocator once, then append, reserve and resize
// freely; Release the vector when done to hand its buffer back.
package dynarray

import "fmt"

// Vector is a contiguous, resizable sequence of T backed by one buffer it
// exclusively owns.
//
// Slots [0, Len()) hold live elements. Slots [Len(), Cap()) are raw storage
// and are never read. Storage comes from the vector's Allocator; elements are
// built and torn down through its Lifecycle.
//
// The zero Vector is empty and ready to use with the default HeapAllocator
// and ValueLifecycle. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	alloc Allocator[T]
	life  Lifecycle[T]
	buf   []T // len(buf) is the capacity; nil when the capacity is 0
	size  int
}

// New returns an empty vector. It neither allocates nor constructs.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}
	return &Vector[T]{alloc: o.alloc, life: o.life}
}

// WithLen returns a vector of count default-constructed elements with a
// capacity of exactly count.
func WithLen[T any](count int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	life := v.lifecycle()
	err := v.initWith(count, func(_ int, slot *T) error {
		return life.Construct(slot)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Filled returns a vector of count copies of prototype with a capacity of
// exactly count.
func Filled[T any](count int, prototype T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	life := v.lifecycle()
	err := v.initWith(count, func(_ int, slot *T) error {
		return life.Copy(slot, &prototype)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding copies of items, in order, with a
// capacity of exactly len(items).
func FromSlice[T any](items []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Assign(items); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// Of is FromSlice with default options.
func Of[T any](items ...T) (*Vector[T], error) {
	return FromSlice(items)
}

// initWith allocates exactly count slots and builds every one of them.
func (v *Vector[T]) initWith(count int, build func(i int, slot *T) error) error {
	return v.initWithCap(count, count, build)
}

// Clone returns a deep copy of v. The copy mirrors v's capacity, not just its
// length, and shares v's allocator and lifecycle.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.alloc, life: v.life}
	if err := c.copyContents(v); err != nil {
		return nil, err
	}
	return c, nil
}

// copyContents allocates Cap(src) slots and copy-constructs src's live
// elements into them. v must be empty.
func (v *Vector[T]) copyContents(src *Vector[T]) error {
	life := v.lifecycle()
	return v.initWithCap(len(src.buf), src.size, func(i int, slot *T) error {
		return life.Copy(slot, &src.buf[i])
	})
}

// initWithCap allocates capacity slots and builds the first count of them.
// On failure nothing is adopted and the buffer is released.
func (v *Vector[T]) initWithCap(capacity, count int, build func(i int, slot *T) error) error {
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	if err := constructRange(v.lifecycle(), buf, 0, count, build); err != nil {
		v.deallocate(buf)
		return err
	}
	v.buf, v.size = buf, count
	return nil
}

// Move transfers v's buffer, elements and allocator to a new vector without
// touching any element. v is left empty and usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{alloc: v.alloc, life: v.life, buf: v.buf, size: v.size}
	v.buf, v.size = nil, 0
	return m
}

// CopyFrom replaces v's contents with a deep copy of other, mirroring other's
// capacity. v keeps its own allocator and lifecycle. Copying a vector onto
// itself does nothing.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	v.Release()
	return v.copyContents(other)
}

// MoveFrom releases v's contents and takes over other's buffer, elements and
// allocator. other is left empty. Moving a vector onto itself does nothing.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.alloc, v.life = other.alloc, other.life
	v.buf, v.size = other.buf, other.size
	other.buf, other.size = nil, 0
}

// Assign replaces v's elements with copies of items. The old elements are
// destroyed first and the existing capacity is reused when large enough.
// items must not alias v's own storage.
func (v *Vector[T]) Assign(items []T) error {
	v.Clear()
	if err := v.Reserve(len(items)); err != nil {
		return err
	}
	life := v.lifecycle()
	err := constructRange(life, v.buf, 0, len(items), func(i int, slot *T) error {
		return life.Copy(slot, &items[i])
	})
	if err != nil {
		return err
	}
	v.size = len(items)
	return nil
}

// Release destroys every live element, then returns the buffer to the
// allocator. It never fails and leaves v empty and usable.
func (v *Vector[T]) Release() {
	if v.buf != nil {
		destroyRange(v.lifecycle(), v.buf, 0, v.size)
		v.allocator().Deallocate(v.buf, len(v.buf))
	}
	v.buf, v.size = nil, 0
}

// allocate obtains exactly n slots. A zero count yields a nil buffer without
// calling the allocator.
func (v *Vector[T]) allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		return nil, nil
	}
	a := v.allocator()
	if limit := a.MaxSize(); n > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, n, limit)
	}
	buf, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	if len(buf) < n {
		a.Deallocate(buf, n)
		return nil, fmt.Errorf("%w: got %d slots, want %d", ErrAllocation, len(buf), n)
	}
	return buf[:n:n], nil
}

// deallocate returns buf to the allocator. nil buffers were never allocated.
func (v *Vector[T]) deallocate(buf []T) {
	if buf != nil {
		v.allocator().Deallocate(buf, len(buf))
	}
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		v.alloc = HeapAllocator[T]{}
	}
	return v.alloc
}

func (v *Vector[T]) lifecycle() Lifecycle[T] {
	if v.life == nil {
		v.life = ValueLifecycle[T]{}
	}
	return v.life
}
