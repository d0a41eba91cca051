package armel

import (
	"fmt"
	"unsafe"

	"github.com/vcthuster/armel/internal/sysmem"
)

// Arena is a fixed-capacity bump allocator over a contiguous region.
// Allocations advance a cursor; reclamation happens only in bulk via Reset
// or Rewind. An Arena constructed by NewStatic or NewBuffered wraps
// caller-supplied storage and never releases it. Not goroutine-safe.
type Arena struct {
	buf   []byte // backing region; nil once an owned arena is freed
	off   int    // cursor, as a byte offset from the region base
	align int
	flags Flag
}

// Owned is an arena whose region was acquired from the operating system.
// It is the only variant with a Free method; keeping the owned state in a
// distinct type makes destruction unreachable for borrowed arenas.
type Owned struct {
	Arena
}

// New creates an owned arena backed by freshly mapped OS pages.
// capacity is rounded up to a multiple of alignment. alignment must be a
// nonzero power of two and capacity must be positive; violations panic
// regardless of flags. With Zeros, the whole region is zero-filled eagerly.
func New(capacity, alignment int, flags Flag) *Owned {
	if !validAlignment(alignment) {
		panic(fmt.Errorf("%w: got %d", ErrBadAlignment, alignment))
	}
	if capacity <= 0 {
		panic(fmt.Errorf("%w: capacity %d", ErrInvalidSize, capacity))
	}
	padded := AlignUp(capacity, alignment)
	buf := sysmem.Alloc(padded)
	if flags&Zeros != 0 {
		clear(buf)
	}
	return &Owned{Arena{buf: buf, align: alignment, flags: flags}}
}

// NewStatic creates a borrowed arena over caller-supplied storage.
// The arena never releases buf; its lifetime is entirely the caller's
// concern. buf must be non-empty and alignment a nonzero power of two.
func NewStatic(buf []byte, alignment int, flags Flag) *Arena {
	if !validAlignment(alignment) {
		panic(fmt.Errorf("%w: got %d", ErrBadAlignment, alignment))
	}
	if len(buf) == 0 {
		panic(fmt.Errorf("%w: empty buffer", ErrInvalidSize))
	}
	return &Arena{buf: buf, align: alignment, flags: flags}
}

// NewBuffered creates a borrowed arena over a fresh heap buffer of the
// given capacity, rounded up to a multiple of alignment. It is the
// declare-buffer-and-arena-in-one convenience: no Free is needed, the
// buffer lives exactly as long as the arena is reachable.
func NewBuffered(capacity, alignment int, flags Flag) *Arena {
	if !validAlignment(alignment) {
		panic(fmt.Errorf("%w: got %d", ErrBadAlignment, alignment))
	}
	if capacity <= 0 {
		panic(fmt.Errorf("%w: capacity %d", ErrInvalidSize, capacity))
	}
	return &Arena{
		buf:   make([]byte, AlignUp(capacity, alignment)),
		align: alignment,
		flags: flags,
	}
}

// Free releases the arena's region back to the operating system and leaves
// the arena unusable: any further allocation fails per the arena's failure
// policy. Calling Free again is a no-op.
func (o *Owned) Free() {
	if o.buf == nil {
		return
	}
	sysmem.Free(o.buf)
	o.buf = nil
	o.off = 0
}

// Alloc carves size bytes out of the arena and returns them as a slice of
// exactly that length and capacity. The slice's address is a multiple of
// the arena's alignment; padding is inserted before the allocation, never
// after. A zero size is legal and yields a non-nil empty slice at the
// aligned cursor. With Zeros set the returned bytes read as zero.
//
// On exhaustion, or when the arena has been freed, Alloc returns nil and
// an error if SoftFail is set, and panics otherwise. The cursor is never
// advanced on failure.
func (a *Arena) Alloc(size int) ([]byte, error) {
	return a.alloc(size, false)
}

// AllocZeroed is Alloc with a per-call zero-fill, independent of the
// arena's Zeros flag.
func (a *Arena) AllocZeroed(size int) ([]byte, error) {
	return a.alloc(size, true)
}

func (a *Arena) alloc(size int, zeroed bool) ([]byte, error) {
	if size < 0 {
		panic(fmt.Errorf("%w: %d bytes", ErrInvalidSize, size))
	}
	if a.buf == nil {
		if a.flags&SoftFail != 0 {
			return nil, ErrUseAfterFree
		}
		panic(fmt.Errorf("%w: cannot allocate %d bytes", ErrUseAfterFree, size))
	}

	// Align the absolute cursor address lazily, by mask.
	base := a.base()
	mask := uintptr(a.align - 1)
	start := int(((base + uintptr(a.off) + mask) &^ mask) - base)
	stop := start + size

	if stop > len(a.buf) {
		if a.flags&SoftFail != 0 {
			return nil, ErrOutOfMemory
		}
		rem := len(a.buf) - start
		if rem < 0 {
			rem = 0
		}
		panic(fmt.Errorf("%w: requested %d bytes, %d remaining (cursor %#x, end %#x)",
			ErrOutOfMemory, size, rem, base+uintptr(a.off), base+uintptr(len(a.buf))))
	}

	b := a.buf[start:stop:stop]
	if zeroed || a.flags&Zeros != 0 {
		clear(b)
	}
	a.off = stop
	return b, nil
}

// Mark returns the current cursor position as an opaque offset from the
// region base, to be handed back to Rewind later.
func (a *Arena) Mark() int {
	return a.off
}

// Rewind moves the cursor back to a position previously returned by Mark,
// reclaiming in bulk everything allocated since. Slices handed out after
// the mark stay bit-valid but are logically dead; not reusing them is a
// caller contract the arena does not enforce. An offset beyond the arena's
// capacity panics unconditionally.
func (a *Arena) Rewind(mark int) {
	if mark < 0 || mark > len(a.buf) {
		panic(fmt.Errorf("%w: offset %d, capacity %d", ErrMarkOutOfRange, mark, len(a.buf)))
	}
	a.off = mark
}

// Reset moves the cursor back to the region base, reclaiming every
// allocation at once. With Zeros set, the entire region is re-zeroed so
// that every readable byte is zero again; that is the one operation whose
// cost scales with capacity rather than with live allocations.
func (a *Arena) Reset() {
	if a.flags&Zeros != 0 {
		clear(a.buf)
	}
	a.off = 0
}

// Used returns the number of bytes between the region base and the cursor,
// alignment padding included.
func (a *Arena) Used() int {
	return a.off
}

// Remaining returns the number of bytes still allocatable, accounting for
// the padding the next allocation would insert. Used()+Remaining() may
// slightly underestimate Cap().
func (a *Arena) Remaining() int {
	if a.buf == nil {
		return 0
	}
	base := a.base()
	mask := uintptr(a.align - 1)
	aligned := int(((base + uintptr(a.off) + mask) &^ mask) - base)
	if aligned > len(a.buf) {
		return 0
	}
	return len(a.buf) - aligned
}

// Cap returns the total capacity of the arena's region in bytes.
// A freed owned arena reports zero.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Alignment returns the arena's alignment in bytes.
func (a *Arena) Alignment() int {
	return a.align
}

// Flags returns the flags the arena was constructed with.
func (a *Arena) Flags() Flag {
	return a.flags
}

func (a *Arena) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}
