package mmap

import "errors"

var (
	// ErrInvalidSize is returned when the requested mapping size is not positive.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
	// ErrUnsupported is returned on hosts without anonymous mapping support.
	// Callers are expected to fall back to heap-backed storage.
	ErrUnsupported = errors.New("mmap: anonymous mappings unsupported on this host")
)
