// Package conv provides checked integer arithmetic for sizing array storage.
//
// These functions perform bounds checking to prevent integer overflow when
// converting between Go's int (platform-dependent) and fixed-width types, and
// when computing byte sizes from element counts.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices over an existing slice), use direct type casts instead.
package conv
