package armel

import (
	"fmt"
	"math"
	"unsafe"
)

// Make returns a pointer to a T stored inside the arena. There is no
// separate code path for typed requests: this is Alloc(sizeof(T)) plus a
// cast. The arena's alignment must be at least the alignment T requires.
// Failure behavior is that of Alloc.
func Make[T any](a *Arena) (*T, error) {
	var zero T
	b, err := a.Alloc(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// MakeZeroed is Make with a per-call zero-fill, independent of the arena's
// Zeros flag.
func MakeZeroed[T any](a *Arena) (*T, error) {
	var zero T
	b, err := a.AllocZeroed(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// MakeSlice allocates a slice of n elements of T inside the arena, laid
// out contiguously as Alloc(sizeof(T)*n). Element contents follow the
// arena's Zeros flag. n must be non-negative and sizeof(T)*n must not
// overflow; violations panic.
func MakeSlice[T any](a *Arena, n int) ([]T, error) {
	return makeSlice[T](a, n, false)
}

// MakeSliceZeroed is MakeSlice with a per-call zero-fill.
func MakeSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	return makeSlice[T](a, n, true)
}

func makeSlice[T any](a *Arena, n int, zeroed bool) ([]T, error) {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if n < 0 || (elem > 0 && n > math.MaxInt/elem) {
		panic(fmt.Errorf("%w: %d elements of %d bytes", ErrInvalidSize, n, elem))
	}
	b, err := a.alloc(elem*n, zeroed)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}
