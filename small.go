package arrgo

import (
	"github.com/hupe1980/arrgo/internal/bitset"
)

// SmallBoxed is the immutable small-lifted-boxed array. Elements live inline
// in one contiguous block with a word-packed init bitmap instead of per-slot
// heap cells, which keeps overhead low for short or short-lived arrays.
type SmallBoxed[T any] struct {
	vals []T
	init bitset.Bits
}

// MutableSmallBoxed is the mutable counterpart of SmallBoxed.
type MutableSmallBoxed[T any] struct {
	vals []T
	init bitset.Bits
}

// Compile-time interface checks
var (
	_ Array[int]        = (*SmallBoxed[int])(nil)
	_ MutableArray[int] = (*MutableSmallBoxed[int])(nil)
)

// NewSmallBoxed allocates a mutable small-boxed array of length n. Every slot
// starts uninitialized; reading one before a write panics deterministically.
func NewSmallBoxed[T any](n int) *MutableSmallBoxed[T] {
	return &MutableSmallBoxed[T]{
		vals: make([]T, n),
		init: bitset.New(n),
	}
}

// NewSmallBoxedWith allocates length n with every slot initialized to v.
func NewSmallBoxedWith[T any](n int, v T) *MutableSmallBoxed[T] {
	m := NewSmallBoxed[T](n)
	for i := range m.vals {
		m.vals[i] = v
	}
	m.init.SetAll(n)
	return m
}

// Len returns the element count.
func (m *MutableSmallBoxed[T]) Len() int { return len(m.vals) }

// Get reads the element at index i. Bounds are not checked.
func (m *MutableSmallBoxed[T]) Get(i int) T {
	if !m.init.Test(i) {
		panic(uninitRead)
	}
	return m.vals[i]
}

// Set writes the element at index i. Bounds are not checked.
func (m *MutableSmallBoxed[T]) Set(i int, v T) {
	m.vals[i] = v
	m.init.Set(i)
}

// Fill writes v to the n slots starting at off.
func (m *MutableSmallBoxed[T]) Fill(off, n int, v T) {
	for i := 0; i < n; i++ {
		m.vals[off+i] = v
		m.init.Set(off + i)
	}
}

// moveSlot relocates one slot including its init state. srcVals/srcInit may
// alias the receiver's storage.
func (m *MutableSmallBoxed[T]) moveSlot(di int, srcVals []T, srcInit bitset.Bits, si int) {
	v := srcVals[si]
	ok := srcInit.Test(si)
	m.vals[di] = v
	if ok {
		m.init.Set(di)
	} else {
		m.init.Clear(di)
	}
}

// CopyFrom copies n elements from the immutable src starting at srcOff.
func (m *MutableSmallBoxed[T]) CopyFrom(dstOff int, src Array[T], srcOff, n int) {
	if s, ok := src.(*SmallBoxed[T]); ok {
		for i := 0; i < n; i++ {
			m.moveSlot(dstOff+i, s.vals, s.init, srcOff+i)
		}
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.At(srcOff+i))
	}
}

// CopyFromMutable copies n elements from a distinct mutable src. The arrays
// must not share storage; overlap is undefined behavior.
func (m *MutableSmallBoxed[T]) CopyFromMutable(dstOff int, src MutableArray[T], srcOff, n int) {
	if s, ok := src.(*MutableSmallBoxed[T]); ok {
		for i := 0; i < n; i++ {
			m.moveSlot(dstOff+i, s.vals, s.init, srcOff+i)
		}
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.Get(srcOff+i))
	}
}

// MoveFrom copies n elements from src, which may be this very array with
// overlapping ranges. Elements and their init state are relocated in
// whichever direction guarantees every read happens before a clobbering
// write.
func (m *MutableSmallBoxed[T]) MoveFrom(dstOff int, src MutableArray[T], srcOff, n int) {
	if n <= 0 {
		return
	}
	s, ok := src.(*MutableSmallBoxed[T])
	if !ok || !sameData(m.vals, s.vals) {
		m.CopyFromMutable(dstOff, src, srcOff, n)
		return
	}
	switch {
	case dstOff == srcOff:
	case dstOff < srcOff:
		for i := 0; i < n; i++ {
			m.moveSlot(dstOff+i, s.vals, s.init, srcOff+i)
		}
	default:
		for i := n - 1; i >= 0; i-- {
			m.moveSlot(dstOff+i, s.vals, s.init, srcOff+i)
		}
	}
}

func copySmallSlice[T any](vals []T, init bitset.Bits, off, n int) ([]T, bitset.Bits) {
	nv := make([]T, n)
	copy(nv, vals[off:off+n])
	ni := bitset.New(n)
	for i := 0; i < n; i++ {
		if init.Test(off + i) {
			ni.Set(i)
		}
	}
	return nv, ni
}

// Freeze returns an immutable copy of the slice [off, off+n).
// The mutable array remains valid.
func (m *MutableSmallBoxed[T]) Freeze(off, n int) *SmallBoxed[T] {
	vals, init := copySmallSlice(m.vals, m.init, off, n)
	return &SmallBoxed[T]{vals: vals, init: init}
}

// UnsafeFreeze reinterprets the storage in place as immutable, in O(1).
// The receiver must never be used again after this call.
func (m *MutableSmallBoxed[T]) UnsafeFreeze() *SmallBoxed[T] {
	return &SmallBoxed[T]{vals: m.vals, init: m.init}
}

// Clone returns an independent mutable copy of the slice [off, off+n).
func (m *MutableSmallBoxed[T]) Clone(off, n int) *MutableSmallBoxed[T] {
	vals, init := copySmallSlice(m.vals, m.init, off, n)
	return &MutableSmallBoxed[T]{vals: vals, init: init}
}

// Resize returns a mutable array of length n preserving the first
// min(Len(), n) elements in fresh storage; the receiver is retired by
// contract.
func (m *MutableSmallBoxed[T]) Resize(n int) *MutableSmallBoxed[T] {
	keep := len(m.vals)
	if n < keep {
		keep = n
	}
	r := NewSmallBoxed[T](n)
	copy(r.vals, m.vals[:keep])
	for i := 0; i < keep; i++ {
		if m.init.Test(i) {
			r.init.Set(i)
		}
	}
	return r
}

// Shrink reduces the logical length to n in place. n must be <= Len().
// The small-boxed layout supports this; the suffix storage is retained but
// unreachable.
func (m *MutableSmallBoxed[T]) Shrink(n int) {
	m.vals = m.vals[:n]
}

// Same reports whether both handles reference the same underlying storage.
func (m *MutableSmallBoxed[T]) Same(o *MutableSmallBoxed[T]) bool {
	return sameData(m.vals, o.vals)
}

// Len returns the element count.
func (a *SmallBoxed[T]) Len() int { return len(a.vals) }

// At reads the element at index i. Bounds are not checked. Reading a slot
// that was never written before the freeze panics deterministically.
func (a *SmallBoxed[T]) At(i int) T {
	if !a.init.Test(i) {
		panic(uninitRead)
	}
	return a.vals[i]
}

// Thaw returns a mutable copy of the slice [off, off+n).
// The immutable array remains valid and unmodified.
func (a *SmallBoxed[T]) Thaw(off, n int) *MutableSmallBoxed[T] {
	vals, init := copySmallSlice(a.vals, a.init, off, n)
	return &MutableSmallBoxed[T]{vals: vals, init: init}
}

// UnsafeThaw reinterprets the storage in place as mutable, in O(1).
// The receiver must never be read again after this call.
func (a *SmallBoxed[T]) UnsafeThaw() *MutableSmallBoxed[T] {
	return &MutableSmallBoxed[T]{vals: a.vals, init: a.init}
}

// Clone returns an independent immutable copy of the slice [off, off+n).
func (a *SmallBoxed[T]) Clone(off, n int) *SmallBoxed[T] {
	vals, init := copySmallSlice(a.vals, a.init, off, n)
	return &SmallBoxed[T]{vals: vals, init: init}
}

// Same reports whether both handles reference the same underlying storage.
func (a *SmallBoxed[T]) Same(o *SmallBoxed[T]) bool {
	return sameData(a.vals, o.vals)
}
