// Package mem provides the aligned heap allocator backing unpinned
// primitive array storage.
package mem
