// Package safe provides a bounds-checked facade over the unchecked arrgo
// core.
//
// Every operation validates its index, offset, and length arguments and
// returns an error instead of reaching the unchecked core out of range. The
// facade never reimplements an algorithm: it validates and delegates.
package safe

import (
	"fmt"

	"github.com/hupe1980/arrgo"
)

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("%w: index %d, length %d", arrgo.ErrIndexOutOfRange, i, length)
	}
	return nil
}

func checkRange(off, n, length int) error {
	if off < 0 || n < 0 || off > length || n > length-off {
		return fmt.Errorf("%w: offset %d, count %d, length %d", arrgo.ErrInvalidRange, off, n, length)
	}
	return nil
}

// Array wraps an immutable array with bounds checking.
type Array[T any] struct {
	inner arrgo.Array[T]
}

// WrapArray wraps any immutable storage kind.
func WrapArray[T any](a arrgo.Array[T]) Array[T] {
	return Array[T]{inner: a}
}

// Unwrap returns the unchecked array.
func (a Array[T]) Unwrap() arrgo.Array[T] { return a.inner }

// Len returns the element count.
func (a Array[T]) Len() int { return a.inner.Len() }

// At reads the element at index i.
func (a Array[T]) At(i int) (T, error) {
	if err := checkIndex(i, a.inner.Len()); err != nil {
		var zero T
		return zero, err
	}
	return a.inner.At(i), nil
}

// Mutable wraps a mutable array with bounds checking.
type Mutable[T any] struct {
	inner arrgo.MutableArray[T]
}

// Wrap wraps any mutable storage kind.
func Wrap[T any](m arrgo.MutableArray[T]) Mutable[T] {
	return Mutable[T]{inner: m}
}

// Unwrap returns the unchecked array.
func (m Mutable[T]) Unwrap() arrgo.MutableArray[T] { return m.inner }

// Len returns the element count.
func (m Mutable[T]) Len() int { return m.inner.Len() }

// Get reads the element at index i.
func (m Mutable[T]) Get(i int) (T, error) {
	if err := checkIndex(i, m.inner.Len()); err != nil {
		var zero T
		return zero, err
	}
	return m.inner.Get(i), nil
}

// Set writes the element at index i.
func (m Mutable[T]) Set(i int, v T) error {
	if err := checkIndex(i, m.inner.Len()); err != nil {
		return err
	}
	m.inner.Set(i, v)
	return nil
}

// Fill writes v to the n slots starting at off.
func (m Mutable[T]) Fill(off, n int, v T) error {
	if err := checkRange(off, n, m.inner.Len()); err != nil {
		return err
	}
	m.inner.Fill(off, n, v)
	return nil
}

// CopyFrom copies n elements from the immutable src starting at srcOff into
// this array starting at dstOff.
func (m Mutable[T]) CopyFrom(dstOff int, src Array[T], srcOff, n int) error {
	if err := checkRange(dstOff, n, m.inner.Len()); err != nil {
		return err
	}
	if err := checkRange(srcOff, n, src.inner.Len()); err != nil {
		return err
	}
	m.inner.CopyFrom(dstOff, src.inner, srcOff, n)
	return nil
}

// CopyFromMutable copies n elements from a distinct mutable src. The arrays
// must not share storage; that contract is not checkable here and remains
// the caller's responsibility. Use MoveFrom when in doubt.
func (m Mutable[T]) CopyFromMutable(dstOff int, src Mutable[T], srcOff, n int) error {
	if err := checkRange(dstOff, n, m.inner.Len()); err != nil {
		return err
	}
	if err := checkRange(srcOff, n, src.inner.Len()); err != nil {
		return err
	}
	m.inner.CopyFromMutable(dstOff, src.inner, srcOff, n)
	return nil
}

// MoveFrom copies n elements from src, which may alias this array with
// overlapping ranges.
func (m Mutable[T]) MoveFrom(dstOff int, src Mutable[T], srcOff, n int) error {
	if err := checkRange(dstOff, n, m.inner.Len()); err != nil {
		return err
	}
	if err := checkRange(srcOff, n, src.inner.Len()); err != nil {
		return err
	}
	m.inner.MoveFrom(dstOff, src.inner, srcOff, n)
	return nil
}
