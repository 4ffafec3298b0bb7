package arrgo

import "unsafe"

// Array is the read-only capability shared by every immutable storage kind.
//
// Implementations never bounds-check: passing an index outside [0, Len()) is
// undefined behavior. A bounds-checked facade is provided by package safe.
type Array[T any] interface {
	// Len returns the element count.
	Len() int
	// At reads the element at index i without bounds checking.
	At(i int) T
}

// MutableArray is the read-write capability shared by every mutable storage
// kind. It extends the unchecked contract of Array to writes and bulk moves.
//
// A mutable array is exclusively owned by whichever goroutine holds its
// handle; this layer performs no synchronization.
type MutableArray[T any] interface {
	// Len returns the element count.
	Len() int
	// Get reads the element at index i without bounds checking.
	Get(i int) T
	// Set writes the element at index i without bounds checking.
	Set(i int, v T)
	// Fill writes v to the n slots starting at off without bounds checking.
	Fill(off, n int, v T)
	// CopyFrom copies n elements from the immutable src starting at srcOff
	// into this array starting at dstOff. Bounds are not checked.
	CopyFrom(dstOff int, src Array[T], srcOff, n int)
	// CopyFromMutable copies n elements from a distinct mutable src. The two
	// arrays must not share storage; overlap is undefined behavior. Use
	// MoveFrom when the source may alias the destination.
	CopyFromMutable(dstOff int, src MutableArray[T], srcOff, n int)
	// MoveFrom copies n elements from src, which may be this very array and
	// may overlap the destination range. The result is as if the elements
	// were first read into a temporary buffer and then written.
	MoveFrom(dstOff int, src MutableArray[T], srcOff, n int)
}

// uninitRead is the message of the deterministic trap raised when a boxed
// slot is read before any write. Unboxed storage has no such trap; its
// unwritten bytes are zero (heap) or zero-filled (pinned mapping).
const uninitRead = "arrgo: read of uninitialized slot"

// sameData reports whether two slices are views of the same allocation.
//
// Identity is fixed at allocation time and never derived from content, so it
// is stable for the whole life of both handles. All zero-length arrays of a
// kind may share identity; callers comparing empty arrays should not rely on
// the result.
func sameData[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
