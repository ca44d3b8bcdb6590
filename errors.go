package dynarray

import "errors"

var (
	// ErrEmpty indicates RemoveLast, Front or Back on a vector with no elements.
	ErrEmpty = errors.New("dynarray: vector is empty")

	// ErrOutOfRange indicates a checked access with an index outside [0, Len()).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrAllocation indicates that an allocator could not provide the requested slots.
	ErrAllocation = errors.New("dynarray: allocation failed")

	// ErrCapacityExceeded indicates a capacity request above the allocator's MaxSize.
	ErrCapacityExceeded = errors.New("dynarray: capacity exceeds allocator maximum")

	// ErrNegativeCount indicates a negative element or slot count.
	ErrNegativeCount = errors.New("dynarray: negative count")

	// ErrPointerElements indicates an element type that holds pointers was given to
	// an allocator whose memory is invisible to the garbage collector.
	ErrPointerElements = errors.New("dynarray: element type contains pointers")
)
