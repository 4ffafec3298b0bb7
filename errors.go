package arrgo

import "errors"

var (
	// ErrIndexOutOfRange is returned by the safe facade when an index falls
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("arrgo: index out of range")
	// ErrInvalidRange is returned by the safe facade when an offset/length
	// pair does not describe a slice of the array.
	ErrInvalidRange = errors.New("arrgo: invalid range")
)
