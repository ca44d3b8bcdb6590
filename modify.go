package dynarray

import "fmt"

// Clear destroys every live element. The capacity is kept.
func (v *Vector[T]) Clear() {
	destroyRange(v.lifecycle(), v.buf, 0, v.size)
	v.size = 0
}

// Resize changes the length to n. Growing reserves exactly n slots if needed
// and default-constructs the new elements; shrinking destroys the tail.
func (v *Vector[T]) Resize(n int) error {
	life := v.lifecycle()
	return v.resize(n, func(_ int, slot *T) error {
		return life.Construct(slot)
	})
}

// ResizeWith is Resize with new elements copied from value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	life := v.lifecycle()
	return v.resize(n, func(_ int, slot *T) error {
		return life.Copy(slot, &value)
	})
}

func (v *Vector[T]) resize(n int, build func(i int, slot *T) error) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrNegativeCount, n)
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	switch {
	case n > v.size:
		if err := constructRange(v.lifecycle(), v.buf, v.size, n, build); err != nil {
			return err
		}
	case n < v.size:
		destroyRange(v.lifecycle(), v.buf, n, v.size)
	}
	v.size = n
	return nil
}

// Append copy-constructs value at the end and returns a pointer to the new
// element. The pointer is valid until the next operation that changes the
// capacity.
func (v *Vector[T]) Append(value T) (*T, error) {
	life := v.lifecycle()
	return v.Emplace(func(slot *T) error {
		return life.Copy(slot, &value)
	})
}

// AppendMove move-constructs *src at the end, leaving *src moved-from.
// src must not point into v.
func (v *Vector[T]) AppendMove(src *T) (*T, error) {
	life := v.lifecycle()
	return v.Emplace(func(slot *T) error {
		return life.Move(slot, src)
	})
}

// Emplace constructs a new last element in place by calling construct on
// its raw slot. When v is full, the capacity grows first to 1.5 times its
// current value (or to exactly one more element if that is larger). If
// construct fails the length is unchanged.
func (v *Vector[T]) Emplace(construct func(slot *T) error) (*T, error) {
	if err := v.grow(); err != nil {
		return nil, err
	}
	slot := &v.buf[v.size]
	if err := construct(slot); err != nil {
		return nil, err
	}
	v.size++
	return slot, nil
}

// RemoveLast destroys the last element.
func (v *Vector[T]) RemoveLast() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	v.lifecycle().Destroy(&v.buf[v.size])
	return nil
}
