package sysmem

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAllocFree(t *testing.T) {
	const size = 8192

	buf := Alloc(size)
	require.Len(t, buf, size)

	// Page-aligned and zero-filled, per the mapping contract.
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	require.Zero(t, addr%uintptr(os.Getpagesize()))
	for i, v := range buf {
		require.Zero(t, v, "byte %d of a fresh mapping is nonzero", i)
	}

	// Read-write.
	buf[0] = 0xAA
	buf[size-1] = 0xBB
	require.Equal(t, byte(0xAA), buf[0])
	require.Equal(t, byte(0xBB), buf[size-1])

	Free(buf)
}

func TestAllocSubPageSize(t *testing.T) {
	buf := Alloc(64)
	require.Len(t, buf, 64)
	buf[63] = 1
	Free(buf)
}
