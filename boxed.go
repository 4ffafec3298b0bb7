package arrgo

// Boxed is the immutable lifted-boxed array: every slot holds a reference to
// a heap cell carrying the element. Reads pay one pointer indirection.
type Boxed[T any] struct {
	cells []*T
}

// MutableBoxed is the mutable counterpart of Boxed.
type MutableBoxed[T any] struct {
	cells []*T
}

// Compile-time interface checks
var (
	_ Array[int]        = (*Boxed[int])(nil)
	_ MutableArray[int] = (*MutableBoxed[int])(nil)
)

// NewBoxed allocates a mutable boxed array of length n. Every slot starts
// uninitialized; reading one before a write panics deterministically.
func NewBoxed[T any](n int) *MutableBoxed[T] {
	return &MutableBoxed[T]{cells: make([]*T, n)}
}

// NewBoxedWith allocates length n with every slot initialized to v.
//
// All slots start out referencing one shared cell. This is sound because Set
// and Fill replace slot pointers and Get copies the value out; nothing ever
// writes through a cell.
func NewBoxedWith[T any](n int, v T) *MutableBoxed[T] {
	m := NewBoxed[T](n)
	cell := v
	for i := range m.cells {
		m.cells[i] = &cell
	}
	return m
}

// Len returns the element count.
func (m *MutableBoxed[T]) Len() int { return len(m.cells) }

// Get reads the element at index i. Bounds are not checked.
func (m *MutableBoxed[T]) Get(i int) T {
	c := m.cells[i]
	if c == nil {
		panic(uninitRead)
	}
	return *c
}

// Set writes the element at index i into a fresh cell. Bounds are not checked.
func (m *MutableBoxed[T]) Set(i int, v T) {
	cell := v
	m.cells[i] = &cell
}

// Fill writes v to the n slots starting at off. The filled slots share one
// cell, like NewBoxedWith.
func (m *MutableBoxed[T]) Fill(off, n int, v T) {
	cell := v
	for i := 0; i < n; i++ {
		m.cells[off+i] = &cell
	}
}

// CopyFrom copies n elements from the immutable src starting at srcOff.
// Source and destination never share storage, so a forward bulk copy is safe.
func (m *MutableBoxed[T]) CopyFrom(dstOff int, src Array[T], srcOff, n int) {
	if s, ok := src.(*Boxed[T]); ok {
		copy(m.cells[dstOff:dstOff+n], s.cells[srcOff:srcOff+n])
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.At(srcOff+i))
	}
}

// CopyFromMutable copies n elements from a distinct mutable src. The arrays
// must not share storage; overlap is undefined behavior.
func (m *MutableBoxed[T]) CopyFromMutable(dstOff int, src MutableArray[T], srcOff, n int) {
	if s, ok := src.(*MutableBoxed[T]); ok {
		copy(m.cells[dstOff:dstOff+n], s.cells[srcOff:srcOff+n])
		return
	}
	for i := 0; i < n; i++ {
		m.Set(dstOff+i, src.Get(srcOff+i))
	}
}

// MoveFrom copies n elements from src, which may be this very array with
// overlapping ranges. Slot references are relocated element by element in
// whichever direction guarantees every read happens before a clobbering
// write.
func (m *MutableBoxed[T]) MoveFrom(dstOff int, src MutableArray[T], srcOff, n int) {
	if n <= 0 {
		return
	}
	s, ok := src.(*MutableBoxed[T])
	if !ok || !sameData(m.cells, s.cells) {
		m.CopyFromMutable(dstOff, src, srcOff, n)
		return
	}
	switch {
	case dstOff == srcOff:
	case dstOff < srcOff:
		for i := 0; i < n; i++ {
			m.cells[dstOff+i] = s.cells[srcOff+i]
		}
	default:
		for i := n - 1; i >= 0; i-- {
			m.cells[dstOff+i] = s.cells[srcOff+i]
		}
	}
}

// Freeze returns an immutable copy of the slice [off, off+n).
// The mutable array remains valid.
func (m *MutableBoxed[T]) Freeze(off, n int) *Boxed[T] {
	cells := make([]*T, n)
	copy(cells, m.cells[off:off+n])
	return &Boxed[T]{cells: cells}
}

// UnsafeFreeze reinterprets the storage in place as immutable, in O(1).
//
// The receiver must never be used again after this call; writing through it
// would violate the immutability of the returned array. That contract is the
// caller's responsibility.
func (m *MutableBoxed[T]) UnsafeFreeze() *Boxed[T] {
	return &Boxed[T]{cells: m.cells}
}

// Clone returns an independent mutable copy of the slice [off, off+n).
func (m *MutableBoxed[T]) Clone(off, n int) *MutableBoxed[T] {
	cells := make([]*T, n)
	copy(cells, m.cells[off:off+n])
	return &MutableBoxed[T]{cells: cells}
}

// Resize returns a mutable array of length n preserving the first
// min(Len(), n) elements. Boxed storage cannot be resized in place, so this
// always allocates fresh storage; the receiver is retired by contract.
func (m *MutableBoxed[T]) Resize(n int) *MutableBoxed[T] {
	cells := make([]*T, n)
	copy(cells, m.cells)
	return &MutableBoxed[T]{cells: cells}
}

// Shrink is advisory. Boxed storage does not support in-place length
// reduction, so this is a no-op; observe Len to see the actual length.
func (m *MutableBoxed[T]) Shrink(n int) {
	_ = n
}

// Same reports whether both handles reference the same underlying storage.
func (m *MutableBoxed[T]) Same(o *MutableBoxed[T]) bool {
	return sameData(m.cells, o.cells)
}

// Len returns the element count.
func (a *Boxed[T]) Len() int { return len(a.cells) }

// At reads the element at index i. Bounds are not checked. Reading a slot
// that was never written before the freeze panics deterministically.
func (a *Boxed[T]) At(i int) T {
	c := a.cells[i]
	if c == nil {
		panic(uninitRead)
	}
	return *c
}

// Thaw returns a mutable copy of the slice [off, off+n).
// The immutable array remains valid and unmodified.
func (a *Boxed[T]) Thaw(off, n int) *MutableBoxed[T] {
	cells := make([]*T, n)
	copy(cells, a.cells[off:off+n])
	return &MutableBoxed[T]{cells: cells}
}

// UnsafeThaw reinterprets the storage in place as mutable, in O(1).
//
// The receiver must never be read again after this call; its storage may now
// be mutated. That contract is the caller's responsibility.
func (a *Boxed[T]) UnsafeThaw() *MutableBoxed[T] {
	return &MutableBoxed[T]{cells: a.cells}
}

// Clone returns an independent immutable copy of the slice [off, off+n).
func (a *Boxed[T]) Clone(off, n int) *Boxed[T] {
	cells := make([]*T, n)
	copy(cells, a.cells[off:off+n])
	return &Boxed[T]{cells: cells}
}

// Same reports whether both handles reference the same underlying storage.
// Two arrays with equal content but separate allocations are not Same.
func (a *Boxed[T]) Same(o *Boxed[T]) bool {
	return sameData(a.cells, o.cells)
}
