package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer handed out by this
// package. 64 bytes matches a cache line and satisfies the alignment of
// every fixed-width element type.
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size whose base
// address is divisible by Alignment. Size 0 returns nil.
//
// Note: the function allocates Alignment extra bytes to find an aligned
// offset. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}
