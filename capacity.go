package dynarray

import "fmt"

// Reserve makes room for at least n elements. When n exceeds the current
// capacity, a buffer of exactly n slots is allocated, the live elements are
// moved into it, the moved-from originals are destroyed and the old buffer is
// released. Len is unchanged. Requests at or below Cap do nothing.
//
// If moving an element fails, the elements already moved are put back, the
// new buffer is released and v is left as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reduces the capacity to Len using the same relocation as
// Reserve. An empty vector gives its buffer back entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	return v.reallocate(v.size)
}

// reallocate relocates the live elements into a buffer of exactly n slots,
// n >= v.size. Old elements are destroyed only after all of them moved.
func (v *Vector[T]) reallocate(n int) error {
	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	life := v.lifecycle()
	if err := relocate(life, buf, v.buf, v.size); err != nil {
		v.deallocate(buf)
		return err
	}
	destroyRange(life, v.buf, 0, v.size)
	v.deallocate(v.buf)
	v.buf = buf
	return nil
}

// grow makes room for one more element, growing geometrically when full.
func (v *Vector[T]) grow() error {
	if v.size < len(v.buf) {
		return nil
	}
	if limit := v.MaxSize(); v.size >= limit {
		return fmt.Errorf("%w: %d elements at maximum %d", ErrCapacityExceeded, v.size, limit)
	}
	return v.reallocate(v.calculateCapacity(v.size + 1))
}

// calculateCapacity returns the capacity to grow to so that requested
// elements fit: 1.5 times the current capacity, capped at MaxSize, and never
// less than requested.
func (v *Vector[T]) calculateCapacity(requested int) int {
	old := len(v.buf)
	limit := v.MaxSize()
	if old > limit-old/2 {
		return limit
	}
	geometric := old + old/2
	if geometric < requested {
		return requested
	}
	return geometric
}
