package arrgo

import "unsafe"

// castSlice reinterprets the backing array of s as elements of type To.
// To and From must have identical size; nothing verifies that here.
func castSlice[To, From any](s []From) []To {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// CastPrim reinterprets a primitive array of element type From as one of
// element type To with zero copying. The length scales with the width ratio:
// the byte size of the array must be a multiple of To's width, which is the
// caller's burden of proof, never verified here.
func CastPrim[To, From Element](a *Prim[From]) *Prim[To] {
	return &Prim[To]{buf: a.buf, mapping: a.mapping}
}

// CastMutablePrim is CastPrim for mutable arrays. Both handles alias the
// same storage afterwards; the source is retired by contract.
func CastMutablePrim[To, From Element](m *MutablePrim[From]) *MutablePrim[To] {
	return &MutablePrim[To]{buf: m.buf, mapping: m.mapping}
}

// CastBoxed reinterprets a boxed array of element type From as one of
// element type To with zero copying, valid only when From and To are
// certified to share identical in-memory layout. The burden of proof is on
// the caller; nothing is verified at the call site.
func CastBoxed[To, From any](a *Boxed[From]) *Boxed[To] {
	return &Boxed[To]{cells: castSlice[*To](a.cells)}
}

// CastMutableBoxed is CastBoxed for mutable arrays. Both handles alias the
// same storage afterwards; the source is retired by contract.
func CastMutableBoxed[To, From any](m *MutableBoxed[From]) *MutableBoxed[To] {
	return &MutableBoxed[To]{cells: castSlice[*To](m.cells)}
}

// CastUnlifted reinterprets an unlifted array of element type From as one of
// element type To with zero copying, under the same layout-compatibility
// contract as CastBoxed.
func CastUnlifted[To, From comparable](a *Unlifted[From]) *Unlifted[To] {
	return &Unlifted[To]{refs: castSlice[To](a.refs)}
}

// CastMutableUnlifted is CastUnlifted for mutable arrays. Both handles alias
// the same storage afterwards; the source is retired by contract.
func CastMutableUnlifted[To, From comparable](m *MutableUnlifted[From]) *MutableUnlifted[To] {
	return &MutableUnlifted[To]{refs: castSlice[To](m.refs)}
}
