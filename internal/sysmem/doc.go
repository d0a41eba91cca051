// Package sysmem acquires and releases raw page-granular memory from the
// operating system: anonymous private mappings on unix, VirtualAlloc
// regions on windows. Freshly acquired memory reads as zero on both.
//
// Failure here is unrecoverable by design. Callers rely on Alloc never
// returning an empty region, so a refusal from the kernel panics with a
// diagnostic instead of surfacing an error.
package sysmem
