package armel

// Error is the constant error type used by this package.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

const (
	// ErrBadAlignment is reported when a constructor receives an alignment
	// that is zero, negative, or not a power of two. Always a panic.
	ErrBadAlignment = Error("armel: alignment must be a nonzero power of two")

	// ErrInvalidSize is reported for negative sizes, zero capacities and
	// element counts that would overflow. Always a panic.
	ErrInvalidSize = Error("armel: invalid size")

	// ErrOutOfMemory is reported when an allocation would exceed the
	// arena's capacity. Returned under SoftFail, a panic otherwise.
	ErrOutOfMemory = Error("armel: arena out of memory")

	// ErrUseAfterFree is reported when a freed owned arena is allocated
	// from. Returned under SoftFail, a panic otherwise.
	ErrUseAfterFree = Error("armel: use of freed arena")

	// ErrMarkOutOfRange is reported when Rewind receives an offset beyond
	// the arena's capacity. Always a panic: a stale or foreign mark is a
	// logic bug, not a resource condition.
	ErrMarkOutOfRange = Error("armel: rewind offset out of range")
)
