package dynarray

import (
	"errors"
	"fmt"
	"strings"
)

// Example demonstrates basic vector usage
func Example() {
	// The default vector uses the heap allocator
	v := New[int]()
	defer v.Release() // Always clean up

	for i := 0; i < 10; i++ {
		if _, err := v.Append(i * i); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())
	fmt.Printf("Elements: %v\n", v.Data())

	// Checked access reports bad indexes instead of panicking
	_, err := v.At(10)
	fmt.Printf("At(10) out of range: %v\n", errors.Is(err, ErrOutOfRange))

	last, _ := v.Back()
	fmt.Printf("Back: %d\n", *last)

	// Output:
	// Len: 10, Cap: 13
	// Elements: [0 1 4 9 16 25 36 49 64 81]
	// At(10) out of range: true
	// Back: 81
}

// ExampleVector_Reserve demonstrates reserving ahead of a known batch
func ExampleVector_Reserve() {
	v := New[string]()
	defer v.Release()

	if err := v.Reserve(100); err != nil {
		panic(err)
	}
	v.Append("only one")
	fmt.Printf("Before shrink: len %d, cap %d\n", v.Len(), v.Cap())

	if err := v.ShrinkToFit(); err != nil {
		panic(err)
	}
	fmt.Printf("After shrink: len %d, cap %d\n", v.Len(), v.Cap())

	// Output:
	// Before shrink: len 1, cap 100
	// After shrink: len 1, cap 1
}

// ExampleVector_Begin demonstrates explicit iterator traversal
func ExampleVector_Begin() {
	v, err := Of("a", "b", "c")
	if err != nil {
		panic(err)
	}

	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		*it.Deref() = strings.ToUpper(*it.Deref())
	}
	for i, s := range v.All() {
		fmt.Println(i, *s)
	}

	// Output:
	// 0 A
	// 1 B
	// 2 C
}

// ExampleCountingAllocator demonstrates auditing growth
func ExampleCountingAllocator() {
	ca := NewCountingAllocator[int](nil)
	v := New(WithAllocator[int](ca))

	for i := 0; i < 100; i++ {
		v.Append(i)
	}

	m := ca.Metrics()
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())
	fmt.Printf("alloc calls=%d dealloc calls=%d\n", m.AllocCalls, m.DeallocCalls)
	fmt.Printf("live=%d peak=%d\n", m.Live, m.Peak)

	// Output:
	// len=100 cap=141
	// alloc calls=13 dealloc calls=12
	// live=141 peak=235
}

// ExampleArenaAllocator demonstrates per-batch vectors on a reusable arena
func ExampleArenaAllocator() {
	a := NewArena[int64](1024)
	defer a.Release()

	for round := 1; round <= 3; round++ {
		v := New(WithAllocator[int64](NewArenaAllocator(a)))
		if err := v.Reserve(16); err != nil {
			panic(err)
		}
		for i := 0; i < 16; i++ {
			v.Append(int64(round * i))
		}

		fmt.Printf("Round %d - slots in use: %d\n", round, a.SizeInUse())

		// Reset arena for next round
		v.Release()
		a.Reset()
	}

	// Output:
	// Round 1 - slots in use: 16
	// Round 2 - slots in use: 16
	// Round 3 - slots in use: 16
}

// ExampleArenaMetrics demonstrates monitoring arena usage
func ExampleArenaMetrics() {
	a := NewArena[int32](1024)
	defer a.Release()

	a.AllocSlots(100)
	a.AllocSlots(200)
	a.AllocSlots(12)

	metrics := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size in use: %d slots\n", metrics.SizeInUse)
	fmt.Printf("  Capacity: %d slots\n", metrics.Capacity)
	fmt.Printf("  Chunks: %d\n", metrics.NumChunks)
	fmt.Printf("  Chunk size: %d slots\n", metrics.ChunkSize)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Size in use: 312 slots
	//   Capacity: 1024 slots
	//   Chunks: 1
	//   Chunk size: 1024 slots
	//   Utilization: 30.5%
}

// ExampleFuncLifecycle demonstrates elements that own resources
func ExampleFuncLifecycle() {
	open := 0
	life := FuncLifecycle[*strings.Builder]{
		ConstructFunc: func(slot **strings.Builder) error {
			open++
			*slot = new(strings.Builder)
			return nil
		},
		DestroyFunc: func(slot **strings.Builder) {
			if *slot != nil {
				open--
			}
			*slot = nil
		},
	}

	v, err := WithLen(3, WithLifecycle[*strings.Builder](life))
	if err != nil {
		panic(err)
	}
	v.Get(1).WriteString("hello")
	fmt.Printf("open builders: %d, second: %q\n", open, v.Get(1).String())

	v.Release()
	fmt.Printf("open builders after release: %d\n", open)

	// Output:
	// open builders: 3, second: "hello"
	// open builders after release: 0
}
