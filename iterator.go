package dynarray

import (
	"iter"
	"unsafe"
)

// Iterator is a mutable cursor over a vector's storage. It is a plain value
// holding a position and carries no bounds checks: dereferencing End, or an
// iterator advanced past it, is undefined.
//
// Iterators are invalidated by anything that may replace the buffer:
// Reserve, Resize, ShrinkToFit, a growing Append or Emplace, CopyFrom,
// MoveFrom, Assign, Swap and Release.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Deref returns a pointer to the element under the cursor.
func (it Iterator[T]) Deref() *T {
	return &it.buf[it.pos]
}

// Inc advances the cursor and returns the advanced iterator.
func (it *Iterator[T]) Inc() Iterator[T] {
	it.pos++
	return *it
}

// PostInc advances the cursor and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Equal reports whether both iterators point at the same slot.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && unsafe.SliceData(it.buf) == unsafe.SliceData(other.buf)
}

// NotEqual is !Equal.
func (it Iterator[T]) NotEqual(other Iterator[T]) bool {
	return !it.Equal(other)
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	buf []T
	pos int
}

// Deref returns a copy of the element under the cursor.
func (it ConstIterator[T]) Deref() T {
	return it.buf[it.pos]
}

// Inc advances the cursor and returns the advanced iterator.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	it.pos++
	return *it
}

// PostInc advances the cursor and returns its previous position.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Equal reports whether both iterators point at the same slot.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.pos == other.pos && unsafe.SliceData(it.buf) == unsafe.SliceData(other.buf)
}

// NotEqual is !Equal.
func (it ConstIterator[T]) NotEqual(other ConstIterator[T]) bool {
	return !it.Equal(other)
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: v.buf}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{buf: v.buf, pos: v.size}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{buf: v.buf}
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{buf: v.buf, pos: v.size}
}

// All yields the index and a pointer to every live element in order.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf[i]) {
				return
			}
		}
	}
}

// Values yields a copy of every live element in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
