//go:build !unix

package dynarray

import (
	"fmt"
	"reflect"
)

// MmapAllocator falls back to the Go heap where anonymous mappings are not
// available. It keeps the pointer-free restriction so code behaves the same
// on every platform.
type MmapAllocator[T any] struct {
	heap HeapAllocator[T]
}

// NewMmapAllocator returns an allocator for T, or ErrPointerElements when T
// can hold pointers.
func NewMmapAllocator[T any]() (*MmapAllocator[T], error) {
	if !pointerFree[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointerElements, reflect.TypeFor[T]())
	}
	return &MmapAllocator[T]{}, nil
}

func (m *MmapAllocator[T]) Allocate(n int) ([]T, error) { return m.heap.Allocate(n) }

func (m *MmapAllocator[T]) Deallocate(buf []T, n int) { m.heap.Deallocate(buf, n) }

func (m *MmapAllocator[T]) MaxSize() int { return m.heap.MaxSize() }
