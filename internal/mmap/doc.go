// Package mmap provides anonymous memory mappings for pinned array storage.
//
// A mapping obtained from MapAnon lives outside the Go heap, so its address is
// stable for the mapping's entire lifetime. That stability is the "pinned"
// contract required before exporting a raw pointer to array storage.
//
// Mappings are reclaimed by the runtime once the *Mapping handle becomes
// unreachable; no explicit free is exposed. Package-level stats track live
// mappings for observability.
package mmap
