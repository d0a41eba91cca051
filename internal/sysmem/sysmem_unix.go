//go:build unix

package sysmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps a page-aligned, read-write, zero-filled region of exactly
// size bytes. It never returns an empty slice; if the kernel refuses the
// mapping, Alloc panics.
func Alloc(size int) []byte {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		panic(fmt.Errorf("sysmem: mmap of %d bytes failed: %w", size, err))
	}
	return buf
}

// Free returns a region obtained from Alloc to the operating system.
// A failed unmap panics.
func Free(buf []byte) {
	if err := unix.Munmap(buf); err != nil {
		panic(fmt.Errorf("sysmem: munmap of %d bytes failed: %w", len(buf), err))
	}
}
