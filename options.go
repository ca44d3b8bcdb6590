package dynarray

// Option configures a Vector at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc Allocator[T]
	life  Lifecycle[T]
}

func defaultOptions[T any]() *options[T] {
	return &options[T]{
		alloc: HeapAllocator[T]{},
		life:  ValueLifecycle[T]{},
	}
}

// WithAllocator sets the storage strategy. A nil allocator keeps the default
// HeapAllocator.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithLifecycle sets the element contract. A nil lifecycle keeps the default
// ValueLifecycle.
func WithLifecycle[T any](l Lifecycle[T]) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.life = l
		}
	}
}
