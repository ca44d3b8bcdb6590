//go:build unix

package dynarray

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator gives every buffer its own anonymous private mapping and
// unmaps it on Deallocate, so released capacity goes straight back to the
// operating system. The memory is invisible to the garbage collector, so
// only pointer-free element types are accepted.
type MmapAllocator[T any] struct {
	elemSize int
	pageSize int
}

// NewMmapAllocator returns an allocator for T, or ErrPointerElements when T
// can hold pointers.
func NewMmapAllocator[T any]() (*MmapAllocator[T], error) {
	if !pointerFree[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointerElements, reflect.TypeFor[T]())
	}
	var zero T
	return &MmapAllocator[T]{
		elemSize: int(unsafe.Sizeof(zero)),
		pageSize: unix.Getpagesize(),
	}, nil
}

// Allocate maps enough whole pages for n slots. The slots start zeroed.
func (m *MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrNegativeCount, n)
	}
	if n == 0 || m.elemSize == 0 {
		return make([]T, n), nil
	}
	if limit := m.MaxSize(); n > limit {
		return nil, fmt.Errorf("%w: %d slots exceeds maximum %d", ErrAllocation, n, limit)
	}
	mem, err := unix.Mmap(-1, 0, m.mappingLen(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d slots: %v", ErrAllocation, n, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n), nil
}

// Deallocate unmaps a buffer obtained from Allocate(n).
func (m *MmapAllocator[T]) Deallocate(buf []T, n int) {
	if n == 0 || m.elemSize == 0 || len(buf) == 0 {
		return
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), m.mappingLen(n))
	// Munmap only rejects slices it did not map; there is nothing to undo then.
	_ = unix.Munmap(mem)
}

// MaxSize returns the largest slot count whose page-rounded size fits an int.
func (m *MmapAllocator[T]) MaxSize() int {
	if m.elemSize == 0 {
		return math.MaxInt
	}
	return (math.MaxInt - m.pageSize) / m.elemSize
}

// mappingLen rounds the byte size of n slots up to whole pages.
func (m *MmapAllocator[T]) mappingLen(n int) int {
	size := n * m.elemSize
	return (size + m.pageSize - 1) &^ (m.pageSize - 1)
}
