// Package arrgo provides a unified array abstraction layer for Go.
//
// Arrgo implements one operation set (allocate, read, write, fill, copy,
// move, clone, resize, shrink, freeze, thaw, identity compare, length) over
// four storage kinds, each with a mutable and an immutable handle:
//
//   - Boxed / MutableBoxed: one heap cell per slot
//   - SmallBoxed / MutableSmallBoxed: inline values, tuned for short arrays
//   - Prim / MutablePrim: flat byte buffer of fixed-width elements
//   - Unlifted / MutableUnlifted: reference elements stored without a cell
//
// Higher-level containers (growable vectors, byte builders) are written once
// against the Array / MutableArray capability interfaces and specialized to
// whichever kind suits the element type.
//
// # Unchecked by design
//
// No operation bounds-checks its index, offset, or length arguments;
// out-of-range access is undefined behavior. Package safe provides the
// bounds-checked facade, which validates and delegates to this core. The one
// locally enforced failure is the uninitialized-read trap: reading a boxed
// slot before any write panics deterministically instead of returning
// garbage.
//
// # Freeze and thaw
//
//	m := arrgo.NewBoxedWith(3, "x")
//	a := m.Freeze(0, 3)   // immutable copy, m stays valid
//	m2 := a.Thaw(0, 2)    // mutable copy, a stays valid
//
// UnsafeFreeze and UnsafeThaw are the O(1) ownership-transferring variants:
// they reinterpret the storage in place, and the source handle must never be
// used again. That contract is the caller's responsibility.
//
// # Overlapping moves
//
// MoveFrom tolerates the source and destination being the same storage with
// overlapping ranges and behaves like copying through a temporary buffer:
//
//	b := arrgo.NewPrim[int32](5)
//	// ... seed 10,20,30,40,50 ...
//	b.MoveFrom(0, b, 1, 4) // [20 30 40 50 50]
//
// # Pinned primitive storage
//
// The unboxed-primitive kind can allocate storage at a fixed address, backed
// by an anonymous memory mapping outside the Go heap:
//
//	p := arrgo.NewPrim[float32](1024, arrgo.WithPinned())
//	p.WithPointer(func(ptr unsafe.Pointer) {
//	    // ptr is stable and the array is kept alive for this call
//	})
//
// # Concurrency
//
// No operation synchronizes. A mutable array must be touched by one goroutine
// at a time; distinct arrays may be used concurrently without restriction.
package arrgo
