package dynarray

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// Allocator is the raw storage strategy of a Vector.
//
// An allocator only hands out and takes back slots. It never constructs or
// destroys elements; the vector does that through its Lifecycle.
type Allocator[T any] interface {
	// Allocate returns exactly n raw slots. The contents are unspecified.
	Allocate(n int) ([]T, error)
	// Deallocate releases a buffer previously obtained from Allocate(n).
	Deallocate(buf []T, n int)
	// MaxSize returns the largest slot count Allocate can be asked for.
	MaxSize() int
}

// HeapAllocator allocates slots on the Go heap. Deallocate is a no-op and
// the garbage collector reclaims released buffers.
type HeapAllocator[T any] struct{}

// Allocate returns a fresh zeroed buffer of n slots.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrNegativeCount, n)
	}
	if limit := maxSlots[T](); n > limit {
		return nil, fmt.Errorf("%w: %d slots exceeds maximum %d", ErrAllocation, n, limit)
	}
	return makeSlots[T](n)
}

// Deallocate does nothing.
func (HeapAllocator[T]) Deallocate([]T, int) {}

// MaxSize returns the number of T values addressable by an int byte count.
func (HeapAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}

// maxSlots returns how many values of T fit in math.MaxInt bytes.
// Zero-sized types are bounded by the int range only.
func maxSlots[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// makeSlots is make([]T, n) for counts the runtime may refuse even though
// they are below maxSlots. The refusal comes back as ErrAllocation.
func makeSlots[T any](n int) (buf []T, err error) {
	defer recoverAllocation(&err, n)
	return make([]T, n), nil
}

// recoverAllocation turns a runtime panic raised while sizing a buffer of n
// slots into an ErrAllocation stored in *err. Other panics propagate.
func recoverAllocation(err *error, n int) {
	r := recover()
	if r == nil {
		return
	}
	re, ok := r.(runtime.Error)
	if !ok {
		panic(r)
	}
	*err = fmt.Errorf("%w: %d slots: %v", ErrAllocation, n, re)
}
