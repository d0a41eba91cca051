package armel

import (
	"fmt"
	"io"
	"strings"
)

// Snapshot is a point-in-time view of an arena's state, for debugging and
// observability. Taking one never mutates the arena and is not meant for
// the allocation hot path.
type Snapshot struct {
	Base      uintptr // address of the region start (0 after Free)
	Cursor    uintptr // address of the current allocation boundary
	End       uintptr // exclusive upper bound of the region
	Capacity  int     // total region size in bytes
	Used      int     // bytes consumed so far, padding included
	Remaining int     // bytes still allocatable after alignment
	Alignment int
	Flags     Flag
}

// Snapshot returns a consistent read-only view of the arena's state.
func (a *Arena) Snapshot() Snapshot {
	base := a.base()
	return Snapshot{
		Base:      base,
		Cursor:    base + uintptr(a.off),
		End:       base + uintptr(len(a.buf)),
		Capacity:  a.Cap(),
		Used:      a.Used(),
		Remaining: a.Remaining(),
		Alignment: a.align,
		Flags:     a.flags,
	}
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
func (s Snapshot) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.Capacity)
}

// String provides a single-line rendering of the snapshot.
func (s Snapshot) String() string {
	return fmt.Sprintf(
		"{base: %#x cursor: %#x end: %#x used: %v remaining: %v alignment: %v flags: %v}",
		s.Base, s.Cursor, s.End, s.Used, s.Remaining, s.Alignment, s.Flags,
	)
}

// String provides a string snapshot of the arena.
func (a *Arena) String() string {
	return "armel" + a.Snapshot().String()
}

// Dump writes a human-readable description of the arena's state to w.
// The format is for eyes only and carries no compatibility guarantee.
func (a *Arena) Dump(w io.Writer) error {
	s := a.Snapshot()
	_, err := fmt.Fprintf(w,
		"[Arena]\n"+
			"  base      = %#x\n"+
			"  cursor    = %#x\n"+
			"  end       = %#x\n"+
			"  used      = %d bytes\n"+
			"  remaining = %d bytes\n"+
			"  alignment = %d\n"+
			"  flags     = %#02x (%v)\n",
		s.Base, s.Cursor, s.End, s.Used, s.Remaining, s.Alignment, uint8(s.Flags), s.Flags,
	)
	return err
}

// String renders the flag set, e.g. "SOFTFAIL|ZEROS" or "NOFLAG".
func (f Flag) String() string {
	if f == NoFlag {
		return "NOFLAG"
	}
	var parts []string
	if f&SoftFail != 0 {
		parts = append(parts, "SOFTFAIL")
	}
	if f&Zeros != 0 {
		parts = append(parts, "ZEROS")
	}
	if rest := f &^ (SoftFail | Zeros); rest != 0 {
		parts = append(parts, fmt.Sprintf("%#02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}
