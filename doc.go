// Package armel implements a linear (bump pointer) memory arena for Go.
//
// # Overview
//
// An arena hands out memory from a single pre-sized region by advancing a
// cursor. Allocation is a couple of arithmetic operations and one bounds
// check; there is no per-allocation metadata, no individual free and no
// fragmentation bookkeeping. Memory comes back all at once, by resetting
// the cursor or rewinding it to a saved mark. This is a good fit for:
//
//   - Per-frame or per-task scratch memory
//   - Many short-lived objects with one batch cleanup
//   - Performance-critical code needing predictable allocation cost
//
// # Basic Usage
//
//	a := armel.New(1*armel.MB, armel.DefaultAlignment, armel.NoFlag)
//	defer a.Free()
//
//	buf, _ := a.Alloc(256)            // raw bytes
//	p, _ := armel.Make[MyStruct](&a.Arena)   // one typed value
//	s, _ := armel.MakeSlice[int64](&a.Arena, 64) // a contiguous array
//
//	a.Reset() // O(1) bulk reclamation, region stays mapped
//
// # Owned and Borrowed Arenas
//
// New maps pages from the operating system and returns an *Owned, which
// must eventually be released with Free. NewStatic wraps storage the
// caller already has (stack, pool, global); NewBuffered pairs a fresh heap
// buffer with an arena in one call. Borrowed arenas have no Free: their
// storage outlives them naturally, and the type system keeps destruction
// out of reach.
//
// # Failure Policy
//
// By default an exhausted or freed arena panics with a diagnostic: arenas
// are meant to be pre-sized, so running out is treated as a sizing bug.
// The SoftFail flag turns exhaustion and use-after-free into ordinary
// error returns. Construction-time contract violations (an alignment that
// is not a nonzero power of two, negative sizes, out-of-range rewinds)
// always panic, regardless of flags.
//
// # Zeroing
//
// With the Zeros flag every readable byte of the arena is guaranteed to be
// zero: the region is cleared at construction, each allocation is cleared
// before it is returned, and Reset re-clears the whole region. The last
// point makes Reset O(capacity) under Zeros; without the flag Reset is
// O(1) and old bytes stay readable. AllocZeroed gives the same guarantee
// for a single call without flipping the arena-wide flag.
//
// # Checkpoints
//
// Mark captures the cursor as a plain offset; Rewind moves the cursor back
// to it, bulk-freeing everything allocated since. Slices handed out after
// the mark remain bit-valid storage but are logically dead; the arena
// keeps no allocation identity and cannot police their reuse.
//
// # Thread Safety
//
// None. The arena assumes a single writer and takes no locks on the
// allocation path; impose external mutual exclusion if you share one.
package armel
