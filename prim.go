package arrgo

import (
	"runtime"
	"unsafe"

	"github.com/hupe1980/arrgo/internal/conv"
	"github.com/hupe1980/arrgo/internal/mem"
	"github.com/hupe1980/arrgo/internal/mmap"
)

// Element constrains unboxed-primitive element types to fixed-width value
// encodings that can live directly in a byte buffer.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// Prim is the immutable unboxed-primitive array: a flat byte buffer holding
// fixed-width element encodings, no per-element heap references.
type Prim[T Element] struct {
	buf     []byte
	mapping *mmap.Mapping // non-nil when the storage is a pinned mapping
}

// MutablePrim is the mutable counterpart of Prim.
//
// Unlike the boxed kinds there is no uninitialized-read trap: unwritten bytes
// are zero, which is benign for primitive encodings.
type MutablePrim[T Element] struct {
	buf     []byte
	mapping *mmap.Mapping
}

// Compile-time interface checks
var (
	_ Array[int32]        = (*Prim[int32])(nil)
	_ MutableArray[int32] = (*MutablePrim[int32])(nil)
)

func width[T Element]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// view reinterprets buf as a typed element slice without copying.
func view[T Element](buf []byte) []T {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/width[T]())
}

func allocPrim(size int, o options) ([]byte, *mmap.Mapping) {
	if o.pinned && size > 0 {
		m, err := mmap.MapAnon(size)
		if err == nil {
			return m.Bytes(), m
		}
		o.logger.Warn("pinned allocation fell back to heap storage",
			"size", size,
			"error", err,
		)
	}
	return mem.AllocAligned(size), nil
}

// NewPrim allocates a mutable primitive array of length n. The element bytes
// start zeroed. WithPinned requests storage at a fixed address.
func NewPrim[T Element](n int, opts ...Option) *MutablePrim[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size, err := conv.ByteSize(n, width[T]())
	if err != nil {
		panic("arrgo: " + err.Error())
	}

	buf, mapping := allocPrim(size, o)
	return &MutablePrim[T]{buf: buf, mapping: mapping}
}

// NewPrimWith allocates length n with every slot initialized to v.
func NewPrimWith[T Element](n int, v T, opts ...Option) *MutablePrim[T] {
	m := NewPrim[T](n, opts...)
	vs := view[T](m.buf)
	for i := range vs {
		vs[i] = v
	}
	return m
}

// Len returns the element count.
func (m *MutablePrim[T]) Len() int { return len(m.buf) / width[T]() }

// Pinned reports whether the storage address is fixed for the array's
// lifetime. A WithPinned request may have degraded to heap storage.
func (m *MutablePrim[T]) Pinned() bool { return m.mapping != nil }

// Get reads the element at index i. Bounds are not checked.
//
// Every method that dereferences the buffer ends with runtime.KeepAlive:
// pinned bytes live off the Go heap, the slice header alone does not keep the
// mapping reachable, and the mapping is unmapped once the handle is
// collected. Without it a call that is the handle's last use could fault.
func (m *MutablePrim[T]) Get(i int) T {
	v := view[T](m.buf)[i]
	runtime.KeepAlive(m)
	return v
}

// Set writes the element at index i. Bounds are not checked.
func (m *MutablePrim[T]) Set(i int, v T) {
	view[T](m.buf)[i] = v
	runtime.KeepAlive(m)
}

// Fill writes v to the n slots starting at off.
func (m *MutablePrim[T]) Fill(off, n int, v T) {
	vs := view[T](m.buf)
	for i := 0; i < n; i++ {
		vs[off+i] = v
	}
	runtime.KeepAlive(m)
}

// CopyFrom copies n elements from the immutable src starting at srcOff.
func (m *MutablePrim[T]) CopyFrom(dstOff int, src Array[T], srcOff, n int) {
	if s, ok := src.(*Prim[T]); ok {
		w := width[T]()
		copy(m.buf[dstOff*w:], s.buf[srcOff*w:(srcOff+n)*w])
		runtime.KeepAlive(m)
		runtime.KeepAlive(s)
		return
	}
	vs := view[T](m.buf)
	for i := 0; i < n; i++ {
		vs[dstOff+i] = src.At(srcOff + i)
	}
	runtime.KeepAlive(m)
}

// CopyFromMutable copies n elements from a distinct mutable src. The arrays
// must not share storage; overlap is undefined behavior.
func (m *MutablePrim[T]) CopyFromMutable(dstOff int, src MutableArray[T], srcOff, n int) {
	if s, ok := src.(*MutablePrim[T]); ok {
		w := width[T]()
		copy(m.buf[dstOff*w:], s.buf[srcOff*w:(srcOff+n)*w])
		runtime.KeepAlive(m)
		runtime.KeepAlive(s)
		return
	}
	vs := view[T](m.buf)
	for i := 0; i < n; i++ {
		vs[dstOff+i] = src.Get(srcOff + i)
	}
	runtime.KeepAlive(m)
}

// MoveFrom copies n elements from src, which may be this very array with
// overlapping ranges. At the byte-buffer level this is a plain block move;
// the builtin copy already has memmove semantics, so no directional element
// loop is needed for this kind.
func (m *MutablePrim[T]) MoveFrom(dstOff int, src MutableArray[T], srcOff, n int) {
	if n <= 0 {
		return
	}
	s, ok := src.(*MutablePrim[T])
	if !ok {
		m.CopyFromMutable(dstOff, src, srcOff, n)
		return
	}
	w := width[T]()
	copy(m.buf[dstOff*w:(dstOff+n)*w], s.buf[srcOff*w:(srcOff+n)*w])
	runtime.KeepAlive(m)
	runtime.KeepAlive(s)
}

// Freeze returns an immutable copy of the slice [off, off+n).
// The copy uses heap storage regardless of the source's pinning.
func (m *MutablePrim[T]) Freeze(off, n int) *Prim[T] {
	w := width[T]()
	size, err := conv.ByteSize(n, w)
	if err != nil {
		panic("arrgo: " + err.Error())
	}
	buf := mem.AllocAligned(size)
	copy(buf, m.buf[off*w:(off+n)*w])
	runtime.KeepAlive(m)
	return &Prim[T]{buf: buf}
}

// UnsafeFreeze reinterprets the storage in place as immutable, in O(1).
// The receiver must never be used again after this call. A pinned mapping is
// carried over and stays alive with the returned handle.
func (m *MutablePrim[T]) UnsafeFreeze() *Prim[T] {
	return &Prim[T]{buf: m.buf, mapping: m.mapping}
}

// Clone returns an independent mutable copy of the slice [off, off+n) in
// heap storage.
func (m *MutablePrim[T]) Clone(off, n int) *MutablePrim[T] {
	w := width[T]()
	size, err := conv.ByteSize(n, w)
	if err != nil {
		panic("arrgo: " + err.Error())
	}
	buf := mem.AllocAligned(size)
	copy(buf, m.buf[off*w:(off+n)*w])
	runtime.KeepAlive(m)
	return &MutablePrim[T]{buf: buf}
}

// Resize returns a mutable array of length n preserving the first
// min(Len(), n) elements. Shrinking reuses the storage in place; growing
// allocates fresh storage, keeping the pinned contract when the source had
// one. The receiver is retired by contract.
func (m *MutablePrim[T]) Resize(n int) *MutablePrim[T] {
	w := width[T]()
	size, err := conv.ByteSize(n, w)
	if err != nil {
		panic("arrgo: " + err.Error())
	}
	if size <= len(m.buf) {
		return &MutablePrim[T]{buf: m.buf[:size], mapping: m.mapping}
	}
	buf, mapping := allocPrim(size, options{pinned: m.mapping != nil, logger: NoopLogger()})
	copy(buf, m.buf)
	runtime.KeepAlive(m)
	return &MutablePrim[T]{buf: buf, mapping: mapping}
}

// Shrink reduces the logical length to n in place. n must be <= Len().
// The byte-buffer layout supports this directly.
func (m *MutablePrim[T]) Shrink(n int) {
	m.buf = m.buf[:n*width[T]()]
}

// Same reports whether both handles reference the same underlying storage.
func (m *MutablePrim[T]) Same(o *MutablePrim[T]) bool {
	return sameData(m.buf, o.buf)
}

// WithPointer passes the base address of the storage to fn and keeps the
// array alive for the full duration of the call, even if no other reference
// remains. The pointer must not escape fn; for a stable address the array
// should have been allocated with WithPinned.
func (m *MutablePrim[T]) WithPointer(fn func(ptr unsafe.Pointer)) {
	fn(unsafe.Pointer(unsafe.SliceData(m.buf)))
	runtime.KeepAlive(m)
}

// CopyToPointer copies n elements starting at srcOff into the externally
// supplied raw buffer dst, which must hold at least n elements.
func (m *MutablePrim[T]) CopyToPointer(dst unsafe.Pointer, srcOff, n int) {
	w := width[T]()
	db := unsafe.Slice((*byte)(dst), n*w)
	copy(db, m.buf[srcOff*w:(srcOff+n)*w])
	runtime.KeepAlive(m)
}

// CopyFromPointer copies n elements from the externally supplied raw buffer
// src into the array starting at dstOff.
func (m *MutablePrim[T]) CopyFromPointer(src unsafe.Pointer, dstOff, n int) {
	w := width[T]()
	sb := unsafe.Slice((*byte)(src), n*w)
	copy(m.buf[dstOff*w:(dstOff+n)*w], sb)
	runtime.KeepAlive(m)
}

// Len returns the element count.
func (a *Prim[T]) Len() int { return len(a.buf) / width[T]() }

// Pinned reports whether the storage address is fixed for the array's
// lifetime.
func (a *Prim[T]) Pinned() bool { return a.mapping != nil }

// At reads the element at index i. Bounds are not checked. The handle is kept
// alive across the access; see MutablePrim.Get.
func (a *Prim[T]) At(i int) T {
	v := view[T](a.buf)[i]
	runtime.KeepAlive(a)
	return v
}

// Thaw returns a mutable copy of the slice [off, off+n) in heap storage.
// The immutable array remains valid and unmodified.
func (a *Prim[T]) Thaw(off, n int) *MutablePrim[T] {
	w := width[T]()
	size, err := conv.ByteSize(n, w)
	if err != nil {
		panic("arrgo: " + err.Error())
	}
	buf := mem.AllocAligned(size)
	copy(buf, a.buf[off*w:(off+n)*w])
	runtime.KeepAlive(a)
	return &MutablePrim[T]{buf: buf}
}

// UnsafeThaw reinterprets the storage in place as mutable, in O(1).
// The receiver must never be read again after this call.
func (a *Prim[T]) UnsafeThaw() *MutablePrim[T] {
	return &MutablePrim[T]{buf: a.buf, mapping: a.mapping}
}

// Clone returns an independent immutable copy of the slice [off, off+n).
func (a *Prim[T]) Clone(off, n int) *Prim[T] {
	w := width[T]()
	size, err := conv.ByteSize(n, w)
	if err != nil {
		panic("arrgo: " + err.Error())
	}
	buf := mem.AllocAligned(size)
	copy(buf, a.buf[off*w:(off+n)*w])
	runtime.KeepAlive(a)
	return &Prim[T]{buf: buf}
}

// Same reports whether both handles reference the same underlying storage.
func (a *Prim[T]) Same(o *Prim[T]) bool {
	return sameData(a.buf, o.buf)
}

// WithPointer passes the base address of the storage to fn and keeps the
// array alive for the full duration of the call. The pointer must not be
// used to mutate the contents.
func (a *Prim[T]) WithPointer(fn func(ptr unsafe.Pointer)) {
	fn(unsafe.Pointer(unsafe.SliceData(a.buf)))
	runtime.KeepAlive(a)
}

// CopyToPointer copies n elements starting at srcOff into the externally
// supplied raw buffer dst.
func (a *Prim[T]) CopyToPointer(dst unsafe.Pointer, srcOff, n int) {
	w := width[T]()
	db := unsafe.Slice((*byte)(dst), n*w)
	copy(db, a.buf[srcOff*w:(srcOff+n)*w])
	runtime.KeepAlive(a)
}

// PinnedStats reports live pinned-mapping usage.
type PinnedStats struct {
	MappedBytes    int64 // Current: bytes held by live mappings
	ActiveMappings int64 // Current: live mapping count
	TotalMappings  int64 // Historical: mappings ever created
}

// PinnedMemoryStats returns a snapshot of pinned-mapping usage across the
// process.
func PinnedMemoryStats() PinnedStats {
	s := mmap.ReadStats()
	return PinnedStats{
		MappedBytes:    s.MappedBytes,
		ActiveMappings: s.ActiveMappings,
		TotalMappings:  s.TotalMappings,
	}
}
