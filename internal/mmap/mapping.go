package mmap

import (
	"runtime"
	"sync/atomic"
)

// Mapping is an anonymous read-write memory mapping.
// It owns the underlying byte slice; the runtime unmaps it once the Mapping
// handle is unreachable.
type Mapping struct {
	data []byte
	size int
}

// Stats reports live anonymous-mapping usage.
type Stats struct {
	MappedBytes    int64 // Current: bytes held by live mappings
	ActiveMappings int64 // Current: live mapping count
	TotalMappings  int64 // Historical: mappings ever created
}

var stats struct {
	mappedBytes    atomic.Int64
	activeMappings atomic.Int64
	totalMappings  atomic.Int64
}

// MapAnon creates an anonymous read-write mapping of size bytes.
//
// The returned memory is zero-filled and lives at a fixed address until the
// Mapping is reclaimed. Reclamation happens automatically when no reference to
// the Mapping remains; callers that hand out pointers into the mapping must
// keep the Mapping reachable for as long as those pointers are in use.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmap, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	m := &Mapping{data: data, size: size}

	stats.mappedBytes.Add(int64(size))
	stats.activeMappings.Add(1)
	stats.totalMappings.Add(1)

	// The cleanup argument is the slice itself: it points into the mapped
	// region, not at the Mapping, so it does not keep m alive.
	runtime.AddCleanup(m, func(d []byte) {
		_ = unmap(d)
		stats.mappedBytes.Add(-int64(len(d)))
		stats.activeMappings.Add(-1)
	}, data)

	return m, nil
}

// Bytes returns the mapped byte slice. The slice is valid only while the
// Mapping itself remains reachable.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// ReadStats returns a snapshot of package-level mapping stats.
func ReadStats() Stats {
	return Stats{
		MappedBytes:    stats.mappedBytes.Load(),
		ActiveMappings: stats.activeMappings.Load(),
		TotalMappings:  stats.totalMappings.Load(),
	}
}
