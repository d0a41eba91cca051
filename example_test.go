package armel

import (
	"fmt"
)

// Example demonstrates an owned arena's lifecycle.
func Example() {
	a := New(1*KB, 8, NoFlag)
	defer a.Free()

	// Allocate raw bytes.
	buf, _ := a.Alloc(256)
	fmt.Printf("allocated %d bytes\n", len(buf))

	// Allocate typed values.
	n, _ := Make[int64](&a.Arena)
	*n = 42
	fmt.Printf("typed value: %d\n", *n)

	s, _ := MakeSlice[int64](&a.Arena, 4)
	for i := range s {
		s[i] = int64(i * i)
	}
	fmt.Printf("slice: %v\n", s)

	fmt.Printf("used: %d bytes\n", a.Used())

	// Reclaim everything at once; the region stays mapped for reuse.
	a.Reset()
	fmt.Printf("after reset: %d bytes\n", a.Used())

	// Output:
	// allocated 256 bytes
	// typed value: 42
	// slice: [0 1 4 9]
	// used: 296 bytes
	// after reset: 0 bytes
}

// ExampleNewStatic wraps storage the caller already owns; no Free exists
// or is needed.
func ExampleNewStatic() {
	var backing [128]byte
	a := NewStatic(backing[:], 8, Zeros)

	v, _ := Make[int64](a)
	fmt.Printf("zeroed: %d\n", *v)
	fmt.Printf("capacity: %d\n", a.Cap())

	// Output:
	// zeroed: 0
	// capacity: 128
}

// ExampleArena_Mark shows a temporary allocation scope: everything
// allocated after the mark is reclaimed by a single Rewind.
func ExampleArena_Mark() {
	a := NewBuffered(1*KB, 8, NoFlag)

	kept, _ := Make[int64](a)
	*kept = 7

	m := a.Mark()
	scratch, _ := MakeSlice[int64](a, 32)
	scratch[0] = 99
	fmt.Printf("inside scope: %d bytes used\n", a.Used())

	a.Rewind(m)
	fmt.Printf("after rewind: %d bytes used\n", a.Used())
	fmt.Printf("kept value: %d\n", *kept)

	// Output:
	// inside scope: 264 bytes used
	// after rewind: 8 bytes used
	// kept value: 7
}

// ExampleSoftFail handles exhaustion as an ordinary error.
func ExampleSoftFail() {
	a := NewBuffered(16, 16, SoftFail)

	if _, err := a.Alloc(64); err != nil {
		fmt.Println("allocation failed:", err)
	}

	// Output:
	// allocation failed: armel: arena out of memory
}
