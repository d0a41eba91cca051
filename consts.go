package armel

import "unsafe"

// Size-unit constants for ergonomic capacity expressions,
// e.g. armel.New(64*armel.MB, armel.DefaultAlignment, armel.NoFlag).
const (
	KB = 1 << 10
	MB = 1 << 20
	GB = 1 << 30
)

// DefaultAlignment is the alignment used by convention when no stricter
// requirement exists: 16 bytes on 64-bit targets, 8 bytes on 32-bit ones.
const DefaultAlignment = 2 * int(unsafe.Sizeof(uintptr(0)))

// Flag configures the behavior of an arena. Flags are fixed at construction
// time and combined with bitwise or.
type Flag uint8

const (
	// NoFlag selects the default behavior: allocations are not zeroed and
	// any exhaustion or misuse panics.
	NoFlag Flag = 0

	// SoftFail makes exhaustion and use-after-free surface as an error
	// return instead of a panic. Configuration errors (bad alignment,
	// negative sizes, out-of-range rewinds) still panic unconditionally.
	SoftFail Flag = 1 << 0

	// Zeros guarantees that every readable byte of the arena is zero:
	// the whole region is cleared at construction, every allocation is
	// cleared before it is returned, and Reset re-clears the whole region.
	Zeros Flag = 1 << 1
)

// AlignUp rounds n up to the next multiple of alignment.
// alignment must be a power of two.
func AlignUp(n, alignment int) int {
	m := alignment - 1
	return (n + m) &^ m
}

// SizeOf returns the number of bytes an arena with the given alignment
// consumes for n allocations of T, padding included. Useful to pre-size a
// buffer for NewStatic.
func SizeOf[T any](n, alignment int) int {
	var zero T
	return AlignUp(int(unsafe.Sizeof(zero)), alignment) * n
}

func validAlignment(alignment int) bool {
	return alignment > 0 && alignment&(alignment-1) == 0
}
