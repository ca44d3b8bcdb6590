package dynarray

import "sync"

// SyncAllocator is a mutex-protected wrapper around an Allocator so that one
// allocator (an arena, a counting allocator) can back vectors owned by
// different goroutines. The vectors themselves still need their own
// synchronisation.
type SyncAllocator[T any] struct {
	mu sync.Mutex
	a  Allocator[T]
}

// NewSyncAllocator wraps a. A nil a wraps a HeapAllocator.
func NewSyncAllocator[T any](a Allocator[T]) *SyncAllocator[T] {
	if a == nil {
		a = HeapAllocator[T]{}
	}
	return &SyncAllocator[T]{a: a}
}

// Allocate thread-safely obtains n slots from the wrapped allocator.
func (s *SyncAllocator[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate thread-safely returns buf to the wrapped allocator.
func (s *SyncAllocator[T]) Deallocate(buf []T, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(buf, n)
}

// MaxSize thread-safely returns the wrapped allocator's maximum.
func (s *SyncAllocator[T]) MaxSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.MaxSize()
}

// Do runs fn with exclusive access to the wrapped allocator, e.g. to read
// metrics or Reset an arena between batches.
func (s *SyncAllocator[T]) Do(fn func(a Allocator[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}
