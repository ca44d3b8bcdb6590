package dynarray

import "errors"

// Lifecycle is the element contract of a Vector: how a value is built in a
// raw slot, copied, moved and torn down. Storage itself comes from the
// Allocator; a Lifecycle only ever works on slots it is handed.
//
// Construct, Copy and Move may fail. Destroy may not.
type Lifecycle[T any] interface {
	// Construct default-constructs a value in slot.
	Construct(slot *T) error
	// Copy copy-constructs a value in slot from src. src is left unchanged.
	Copy(slot, src *T) error
	// Move move-constructs a value in slot from src. src is left in a
	// moved-from state that must still be destroyed.
	Move(slot, src *T) error
	// Destroy ends the lifetime of the value in slot.
	Destroy(slot *T)
}

// ValueLifecycle treats T as a plain Go value: construction yields the zero
// value, copying is assignment, moving is assignment followed by zeroing the
// source, and destruction zeroes the slot so the collector can drop whatever
// it referenced.
type ValueLifecycle[T any] struct{}

func (ValueLifecycle[T]) Construct(slot *T) error {
	var zero T
	*slot = zero
	return nil
}

func (ValueLifecycle[T]) Copy(slot, src *T) error {
	*slot = *src
	return nil
}

func (ValueLifecycle[T]) Move(slot, src *T) error {
	var zero T
	*slot = *src
	*src = zero
	return nil
}

func (ValueLifecycle[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// FuncLifecycle builds a Lifecycle from plain functions. A nil field falls
// back to the ValueLifecycle behaviour for that operation.
type FuncLifecycle[T any] struct {
	ConstructFunc func(slot *T) error
	CopyFunc      func(slot, src *T) error
	MoveFunc      func(slot, src *T) error
	DestroyFunc   func(slot *T)
}

func (f FuncLifecycle[T]) Construct(slot *T) error {
	if f.ConstructFunc == nil {
		return ValueLifecycle[T]{}.Construct(slot)
	}
	return f.ConstructFunc(slot)
}

func (f FuncLifecycle[T]) Copy(slot, src *T) error {
	if f.CopyFunc == nil {
		return ValueLifecycle[T]{}.Copy(slot, src)
	}
	return f.CopyFunc(slot, src)
}

func (f FuncLifecycle[T]) Move(slot, src *T) error {
	if f.MoveFunc == nil {
		return ValueLifecycle[T]{}.Move(slot, src)
	}
	return f.MoveFunc(slot, src)
}

func (f FuncLifecycle[T]) Destroy(slot *T) {
	if f.DestroyFunc == nil {
		ValueLifecycle[T]{}.Destroy(slot)
		return
	}
	f.DestroyFunc(slot)
}

// constructRange builds buf[start:end] left to right. If build fails, the
// elements built so far in this batch are destroyed before the error is
// returned, so no partially built range is ever left behind.
func constructRange[T any](life Lifecycle[T], buf []T, start, end int, build func(i int, slot *T) error) error {
	for i := start; i < end; i++ {
		if err := build(i, &buf[i]); err != nil {
			destroyRange(life, buf, start, i)
			return err
		}
	}
	return nil
}

// destroyRange destroys buf[start:end].
func destroyRange[T any](life Lifecycle[T], buf []T, start, end int) {
	for i := start; i < end; i++ {
		life.Destroy(&buf[i])
	}
}

// relocate move-constructs src[:n] into dst[:n]. The sources are left
// moved-from and still need destroying. When a move fails, the elements
// already relocated are moved back into src and their dst slots destroyed,
// so src holds the live elements again. A slot whose move back fails is
// default constructed instead, so every src slot is destroyed exactly once
// by whoever owns src later.
func relocate[T any](life Lifecycle[T], dst, src []T, n int) error {
	for i := 0; i < n; i++ {
		err := life.Move(&dst[i], &src[i])
		if err == nil {
			continue
		}
		errs := []error{err}
		for j := 0; j < i; j++ {
			life.Destroy(&src[j])
			if backErr := life.Move(&src[j], &dst[j]); backErr != nil {
				errs = append(errs, backErr)
				if cerr := life.Construct(&src[j]); cerr != nil {
					errs = append(errs, cerr)
				}
			}
			life.Destroy(&dst[j])
		}
		if len(errs) == 1 {
			return err
		}
		return errors.Join(errs...)
	}
	return nil
}
