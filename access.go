package dynarray

import "fmt"

// At returns a pointer to the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}
	return &v.buf[i], nil
}

// Index returns a pointer to the element at index i without checking it
// against Len. The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Index(i int) *T {
	return &v.buf[i]
}

// Get returns a copy of the element at index i without checking it against
// Len. The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Get(i int) T {
	return v.buf[i]
}

// Front returns a pointer to the first element, or ErrEmpty.
func (v *Vector[T]) Front() (*T, error) {
	if v.size == 0 {
		return nil, ErrEmpty
	}
	return &v.buf[0], nil
}

// Back returns a pointer to the last element, or ErrEmpty.
func (v *Vector[T]) Back() (*T, error) {
	if v.size == 0 {
		return nil, ErrEmpty
	}
	return &v.buf[v.size-1], nil
}

// Data returns the live elements as a slice sharing v's storage. It is nil
// when the capacity is 0 and is invalidated like an iterator.
func (v *Vector[T]) Data() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf[:v.size:v.size]
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of reserved slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest capacity v's allocator can provide.
func (v *Vector[T]) MaxSize() int {
	return v.allocator().MaxSize()
}

// Allocator returns v's storage strategy.
func (v *Vector[T]) Allocator() Allocator[T] {
	return v.allocator()
}

// Swap exchanges the contents and strategies of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}
