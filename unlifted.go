package arrgo

// Unlifted is the immutable unlifted-boxed array. Elements are stored
// directly in one contiguous block with no per-slot cell, skipping the
// indirection layer the lifted kind pays.
//
// The caller certifies that T is a reference-like type (pointer, channel,
// interface) whose zero value is never a valid element;
// the zero value marks an unwritten slot. Storing a zero value makes later
// reads of that slot trap as uninitialized.
type Unlifted[T comparable] struct {
	refs []T
}

// MutableUnlifted is the mutable counterpart of Unlifted.
type MutableUnlifted[T comparable] struct {
	refs []T
}

// Compile-time interface checks
var (
	_ Array[*int]        = (*Unlifted[*int])(nil)
	_ MutableArray[*int] = (*MutableUnlifted[*int])(nil)
)

// NewUnlifted allocates a mutable unlifted array of length n. Every slot
// starts uninitialized; reading one before a write panics deterministically.
func NewUnlifted[T comparable](n int) *MutableUnlifted[T] {
	return &MutableUnlifted[T]{refs: make([]T, n)}
}

// NewUnliftedWith allocates length n with every slot initialized to v.
func NewUnliftedWith[T comparable](n int, v T) *MutableUnlifted[T] {
	m := NewUnlifted[T](n)
	for i := range m.refs {
		m.refs[i] = v
	}
	return m
}

// Len returns the element count.
func (m *MutableUnlifted[T]) Len() int { return len(m.refs) }

// Get reads the element at index i. Bounds are not checked.
func (m *MutableUnlifted[T]) Get(i int) T {
	v := m.refs[i]
	var zero T
	if v == zero {
		panic(uninitRead)
	}
	return v
}

// Set writes the element at index i. Bounds are not checked.
func (m *MutableUnlifted[T]) Set(i int, v T) {
	m.refs[i] = v
}

// Fill writes v to the n slots starting at off.
func (m *MutableUnlifted[T]) Fill(off, n int, v T) {
	for i := 0; i < n; i++ {
		m.refs[off+i] = v
	}
}

// CopyFrom copies n elements from the immutable src starting at srcOff.
func (m *MutableUnlifted[T]) CopyFrom(dstOff int, src Array[T], srcOff, n int) {
	if s, ok := src.(*Unlifted[T]); ok {
		copy(m.refs[dstOff:dstOff+n], s.refs[srcOff:srcOff+n])
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.At(srcOff+i))
	}
}

// CopyFromMutable copies n elements from a distinct mutable src. The arrays
// must not share storage; overlap is undefined behavior.
func (m *MutableUnlifted[T]) CopyFromMutable(dstOff int, src MutableArray[T], srcOff, n int) {
	if s, ok := src.(*MutableUnlifted[T]); ok {
		copy(m.refs[dstOff:dstOff+n], s.refs[srcOff:srcOff+n])
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.Get(srcOff+i))
	}
}

// MoveFrom copies n elements from src, which may be this very array with
// overlapping ranges. References are relocated element by element in
// whichever direction guarantees every read happens before a clobbering
// write.
func (m *MutableUnlifted[T]) MoveFrom(dstOff int, src MutableArray[T], srcOff, n int) {
	if n <= 0 {
		return
	}
	s, ok := src.(*MutableUnlifted[T])
	if !ok || !sameData(m.refs, s.refs) {
		m.CopyFromMutable(dstOff, src, srcOff, n)
		return
	}
	switch {
	case dstOff == srcOff:
	case dstOff < srcOff:
		for i := 0; i < n; i++ {
			m.refs[dstOff+i] = s.refs[srcOff+i]
		}
	default:
		for i := n - 1; i >= 0; i-- {
			m.refs[dstOff+i] = s.refs[srcOff+i]
		}
	}
}

// Freeze returns an immutable copy of the slice [off, off+n).
// The mutable array remains valid.
func (m *MutableUnlifted[T]) Freeze(off, n int) *Unlifted[T] {
	refs := make([]T, n)
	copy(refs, m.refs[off:off+n])
	return &Unlifted[T]{refs: refs}
}

// UnsafeFreeze reinterprets the storage in place as immutable, in O(1).
// The receiver must never be used again after this call.
func (m *MutableUnlifted[T]) UnsafeFreeze() *Unlifted[T] {
	return &Unlifted[T]{refs: m.refs}
}

// Clone returns an independent mutable copy of the slice [off, off+n).
func (m *MutableUnlifted[T]) Clone(off, n int) *MutableUnlifted[T] {
	refs := make([]T, n)
	copy(refs, m.refs[off:off+n])
	return &MutableUnlifted[T]{refs: refs}
}

// Resize returns a mutable array of length n preserving the first
// min(Len(), n) elements in fresh storage; the receiver is retired by
// contract.
func (m *MutableUnlifted[T]) Resize(n int) *MutableUnlifted[T] {
	refs := make([]T, n)
	copy(refs, m.refs)
	return &MutableUnlifted[T]{refs: refs}
}

// Shrink is advisory. The unlifted layout does not support in-place length
// reduction, so this is a no-op; observe Len to see the actual length.
func (m *MutableUnlifted[T]) Shrink(n int) {
	_ = n
}

// Same reports whether both handles reference the same underlying storage.
func (m *MutableUnlifted[T]) Same(o *MutableUnlifted[T]) bool {
	return sameData(m.refs, o.refs)
}

// Len returns the element count.
func (a *Unlifted[T]) Len() int { return len(a.refs) }

// At reads the element at index i. Bounds are not checked. Reading a slot
// that was never written before the freeze panics deterministically.
func (a *Unlifted[T]) At(i int) T {
	v := a.refs[i]
	var zero T
	if v == zero {
		panic(uninitRead)
	}
	return v
}

// Thaw returns a mutable copy of the slice [off, off+n).
// The immutable array remains valid and unmodified.
func (a *Unlifted[T]) Thaw(off, n int) *MutableUnlifted[T] {
	refs := make([]T, n)
	copy(refs, a.refs[off:off+n])
	return &MutableUnlifted[T]{refs: refs}
}

// UnsafeThaw reinterprets the storage in place as mutable, in O(1).
// The receiver must never be read again after this call.
func (a *Unlifted[T]) UnsafeThaw() *MutableUnlifted[T] {
	return &MutableUnlifted[T]{refs: a.refs}
}

// Clone returns an independent immutable copy of the slice [off, off+n).
func (a *Unlifted[T]) Clone(off, n int) *Unlifted[T] {
	refs := make([]T, n)
	copy(refs, a.refs[off:off+n])
	return &Unlifted[T]{refs: refs}
}

// Same reports whether both handles reference the same underlying storage.
func (a *Unlifted[T]) Same(o *Unlifted[T]) bool {
	return sameData(a.refs, o.refs)
}
