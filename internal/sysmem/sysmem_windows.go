//go:build windows

package sysmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc reserves and commits a page-aligned, read-write, zero-filled
// region of exactly size bytes. It never returns an empty slice; if the
// system refuses the allocation, Alloc panics.
func Alloc(size int) []byte {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil {
		panic(fmt.Errorf("sysmem: VirtualAlloc of %d bytes failed: %w", size, err))
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

// Free returns a region obtained from Alloc to the operating system.
// A failed release panics.
func Free(buf []byte) {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		panic(fmt.Errorf("sysmem: VirtualFree of %d bytes failed: %w", len(buf), err))
	}
}
