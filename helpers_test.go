package dynarray

import (
	"errors"
	"fmt"
)

var errInjected = errors.New("injected failure")

// object owns a heap cell, so a shallow copy would alias it.
type object struct {
	id *int
}

func obj(n int) object { return object{id: &n} }

func (o object) value() int {
	if o.id == nil {
		return -1
	}
	return *o.id
}

// objectLifecycle counts every lifecycle call made on objects and can fail
// the n-th call of a given operation.
type objectLifecycle struct {
	ctor    int // successful constructions of any kind
	copies  int
	moves   int
	dtor    int
	news    int // heap cells created
	deletes int // heap cells dropped

	calls  map[string]int
	failAt map[string]int
}

func newObjectLifecycle() *objectLifecycle {
	return &objectLifecycle{calls: map[string]int{}, failAt: map[string]int{}}
}

// failOn makes the n-th future call of op fail (1-based, counted from now).
func (l *objectLifecycle) failOn(op string, n int) {
	l.failAt[op] = l.calls[op] + n
}

func (l *objectLifecycle) fail(op string) bool {
	l.calls[op]++
	n, ok := l.failAt[op]
	return ok && l.calls[op] == n
}

func (l *objectLifecycle) Construct(slot *object) error {
	if l.fail("construct") {
		return errInjected
	}
	l.ctor++
	l.news++
	id := 0
	slot.id = &id
	return nil
}

func (l *objectLifecycle) Copy(slot, src *object) error {
	if l.fail("copy") {
		return errInjected
	}
	l.ctor++
	l.copies++
	l.news++
	id := *src.id
	slot.id = &id
	return nil
}

func (l *objectLifecycle) Move(slot, src *object) error {
	if l.fail("move") {
		return errInjected
	}
	l.ctor++
	l.moves++
	slot.id = src.id
	src.id = nil
	return nil
}

func (l *objectLifecycle) Destroy(slot *object) {
	l.dtor++
	if slot.id != nil {
		l.deletes++
	}
	slot.id = nil
}

// live is the number of constructed but not yet destroyed objects.
func (l *objectLifecycle) live() int { return l.ctor - l.dtor }

// liveCells is the number of heap cells currently owned by objects.
func (l *objectLifecycle) liveCells() int { return l.news - l.deletes }

// limitAllocator is a heap allocator with an artificial MaxSize.
type limitAllocator[T any] struct {
	HeapAllocator[T]
	max int
}

func (l limitAllocator[T]) MaxSize() int { return l.max }

// failingAllocator fails the n-th Allocate call (1-based) and every call
// after it while failing is set.
type failingAllocator[T any] struct {
	HeapAllocator[T]
	calls  int
	failAt int
}

func (f *failingAllocator[T]) Allocate(n int) ([]T, error) {
	f.calls++
	if f.failAt > 0 && f.calls >= f.failAt {
		return nil, fmt.Errorf("%w: injected at call %d", ErrAllocation, f.calls)
	}
	return f.HeapAllocator.Allocate(n)
}

// shortAllocator returns one slot fewer than requested.
type shortAllocator[T any] struct {
	HeapAllocator[T]
}

func (shortAllocator[T]) Allocate(n int) ([]T, error) {
	return make([]T, n-1), nil
}

// newTracked returns a vector of objects wired to a counting allocator and an
// instrumented lifecycle.
func newTracked() (*Vector[object], *CountingAllocator[object], *objectLifecycle) {
	ca := NewCountingAllocator[object](nil)
	life := newObjectLifecycle()
	v := New(WithAllocator[object](ca), WithLifecycle[object](life))
	return v, ca, life
}

func trackedOpts(ca *CountingAllocator[object], life *objectLifecycle) []Option[object] {
	return []Option[object]{WithAllocator[object](ca), WithLifecycle[object](life)}
}

func values(v *Vector[object]) []int {
	out := make([]int, 0, v.Len())
	for o := range v.Values() {
		out = append(out, o.value())
	}
	return out
}

func ints(v *Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}
