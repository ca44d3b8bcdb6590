// Package dynarray implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector owns one contiguous buffer of T and keeps two counts apart: the
// capacity (slots reserved from an allocator) and the length (slots holding
// live elements). Acquiring storage and giving an element its lifetime are
// separate steps:
//
//   - An Allocator hands out and takes back raw slots
//   - A Lifecycle constructs, copies, moves and destroys elements in those slots
//
// Both are strategies supplied when the vector is created, so the same
// container can run on the Go heap, an arena or anonymous memory mappings,
// and can hold values whose copies own external resources.
//
// # Basic Usage
//
//	v := dynarray.New[int]()
//	defer v.Release()
//
//	if _, err := v.Append(42); err != nil {
//		return err
//	}
//	first, err := v.At(0)
//
//	for i, p := range v.All() {
//		*p += i
//	}
//
// # Growth
//
// Appending to a full vector grows the capacity to 1.5 times its current
// value, or to exactly the required size when that is larger, and never past
// the allocator's MaxSize. Growing allocates the new buffer, moves the live
// elements over, destroys the moved-from originals and only then releases
// the old buffer. Reserve, Resize and ShrinkToFit allocate exactly the
// requested capacity.
//
// # Allocators
//
//	heap := dynarray.HeapAllocator[T]{}                // default
//	arena := dynarray.NewArenaAllocator[T](nil)        // bump allocation, bulk Reset
//	mapped, err := dynarray.NewMmapAllocator[T]()      // pointer-free T only
//	counted := dynarray.NewCountingAllocator[T](heap)  // slot accounting
//	shared := dynarray.NewSyncAllocator[T](arena)      // one allocator, many goroutines
//
//	v := dynarray.New(dynarray.WithAllocator[T](counted))
//
// # Failures
//
// Operations that can fail return an error. Checked access reports
// ErrOutOfRange and ErrEmpty; allocator and element errors are returned as
// they are. When building several elements fails part way, the ones already
// built are destroyed and any buffer not yet adopted is released, so nothing
// leaks and nothing is released twice. The length goes back to what it was,
// but capacity already reserved by the same call is kept: a Resize that fails
// while building still leaves the larger buffer in place.
//
// # Iterators
//
// Begin/End and CBegin/CEnd return cursor values over the buffer with no
// bounds checks. Any operation that may replace the buffer invalidates them,
// as it does pointers returned by At, Append and Emplace.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. SyncAllocator only makes a shared
// allocator safe; each vector still needs external synchronisation.
package dynarray
