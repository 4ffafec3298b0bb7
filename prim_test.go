package arrgo

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/arrgo/internal/mmap"
)

// requirePinnedSupport skips the test on hosts where anonymous mappings are
// unavailable, the same condition under which allocation falls back to heap
// storage.
func requirePinnedSupport(t *testing.T) {
	t.Helper()
	m, err := mmap.MapAnon(4096)
	if errors.Is(err, mmap.ErrUnsupported) {
		t.Skip("anonymous mappings unavailable on this host")
	}
	require.NoError(t, err)
	// Hold the probe mapping until the test ends so its reclamation cannot
	// perturb stats deltas taken inside the test.
	t.Cleanup(func() { runtime.KeepAlive(m) })
}

func TestNewPrim(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		assert.Equal(t, 0, NewPrim[int32](0).Len())
		assert.Equal(t, 5, NewPrim[int32](5).Len())
		assert.Equal(t, 5, NewPrim[float64](5).Len())
	})

	t.Run("unwritten bytes read as zero", func(t *testing.T) {
		m := NewPrim[uint16](4)
		for i := 0; i < 4; i++ {
			assert.Equal(t, uint16(0), m.Get(i))
		}
	})

	t.Run("write then read", func(t *testing.T) {
		m := NewPrim[int64](3)
		m.Set(1, -7)
		assert.Equal(t, int64(-7), m.Get(1))
	})
}

func TestNewPrimWith(t *testing.T) {
	m := NewPrimWith[float32](5, 1.5)
	assert.Equal(t, 5, m.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, float32(1.5), m.Get(i))
	}
}

func TestPrimFill(t *testing.T) {
	m := NewPrim[byte](5)
	m.Fill(1, 3, 0xAA)

	want := []byte{0, 0xAA, 0xAA, 0xAA, 0}
	for i, w := range want {
		assert.Equal(t, w, m.Get(i))
	}
}

func TestPrimFreezeThawRoundTrip(t *testing.T) {
	m := NewPrim[int32](4)
	for i := 0; i < 4; i++ {
		m.Set(i, int32(i)*3)
	}

	a := m.Freeze(0, 4)
	m2 := a.Thaw(0, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, int32(i)*3, m2.Get(i))
	}

	m.Set(0, -1)
	assert.Equal(t, int32(0), a.At(0))
}

func TestPrimUnsafeFreezeThaw(t *testing.T) {
	m := NewPrim[uint64](3)
	m.Set(0, 1)

	a := m.UnsafeFreeze()
	assert.Equal(t, uint64(1), a.At(0))

	m2 := a.UnsafeThaw()
	assert.True(t, m.Same(m2), "ownership transfer must not copy storage")
}

func TestPrimCloneIndependence(t *testing.T) {
	m := NewPrimWith[int16](3, 5)
	c := m.Clone(0, 3)

	c.Set(0, 99)
	assert.Equal(t, int16(5), m.Get(0))

	m.Set(1, 77)
	assert.Equal(t, int16(5), c.Get(1))
}

func TestPrimResize(t *testing.T) {
	t.Run("grow preserves prefix", func(t *testing.T) {
		m := NewPrimWith[int32](3, 7)
		r := m.Resize(6)

		assert.Equal(t, 6, r.Len())
		for i := 0; i < 3; i++ {
			assert.Equal(t, int32(7), r.Get(i))
		}
		for i := 3; i < 6; i++ {
			assert.Equal(t, int32(0), r.Get(i))
		}
	})

	t.Run("shrink reuses storage", func(t *testing.T) {
		m := NewPrimWith[int32](4, 9)
		r := m.Resize(2)

		assert.Equal(t, 2, r.Len())
		assert.Equal(t, int32(9), r.Get(0))
		assert.True(t, r.Same(m), "in-place resize keeps the allocation")
	})
}

func TestPrimShrinkInPlace(t *testing.T) {
	m := NewPrimWith[float64](6, 2.5)
	m.Shrink(2)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2.5, m.Get(0))
	assert.Equal(t, 2.5, m.Get(1))
}

func TestPrimSame(t *testing.T) {
	m := NewPrimWith[int32](3, 1)
	o := NewPrimWith[int32](3, 1)

	assert.True(t, m.Same(m))
	assert.False(t, m.Same(o))
	assert.False(t, m.Same(m.Clone(0, 3)))
}

func TestPrimCopyFrom(t *testing.T) {
	src := NewPrim[int32](4)
	for i := 0; i < 4; i++ {
		src.Set(i, int32(i+1))
	}
	frozen := src.Freeze(0, 4)

	dst := NewPrim[int32](4)
	dst.CopyFrom(1, frozen, 0, 3)

	want := []int32{0, 1, 2, 3}
	for i, w := range want {
		assert.Equal(t, w, dst.Get(i))
	}

	dst2 := NewPrim[int32](2)
	dst2.CopyFromMutable(0, src, 2, 2)
	assert.Equal(t, int32(3), dst2.Get(0))
	assert.Equal(t, int32(4), dst2.Get(1))
}

func TestPrimPinned(t *testing.T) {
	requirePinnedSupport(t)

	before := PinnedMemoryStats()

	m := NewPrim[float32](1024, WithPinned())
	require.True(t, m.Pinned())
	require.Equal(t, 1024, m.Len())

	after := PinnedMemoryStats()
	assert.Greater(t, after.TotalMappings, before.TotalMappings)
	assert.GreaterOrEqual(t, after.MappedBytes-before.MappedBytes, int64(1024*4))

	// Pinned memory is zero-filled and writable like heap storage.
	assert.Equal(t, float32(0), m.Get(0))
	m.Set(0, 3.25)
	assert.Equal(t, float32(3.25), m.Get(0))

	// The pinned contract survives an ownership-transferring freeze.
	a := m.UnsafeFreeze()
	assert.True(t, a.Pinned())
}

func TestPrimPinnedAccessSurvivesCollection(t *testing.T) {
	requirePinnedSupport(t)

	// An accessor call that is the handle's last use must keep the handle
	// alive through the memory access; otherwise the cleanup could unmap
	// the storage between the slice-header load and the read.
	for i := 0; i < 64; i++ {
		m := NewPrimWith[int64](512, int64(i), WithPinned())
		runtime.GC()
		assert.Equal(t, int64(i), m.Get(511))
	}
}

func TestPrimCopySizeOverflowPanics(t *testing.T) {
	m := NewPrim[int64](1)
	a := m.Freeze(0, 1)

	huge := math.MaxInt / 2
	assert.Panics(t, func() { m.Freeze(0, huge) })
	assert.Panics(t, func() { m.Clone(0, huge) })
	assert.Panics(t, func() { a.Thaw(0, huge) })
	assert.Panics(t, func() { a.Clone(0, huge) })
}

func TestPrimPinnedZeroLength(t *testing.T) {
	m := NewPrim[int32](0, WithPinned())
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Pinned())
}

func TestPrimWithPointer(t *testing.T) {
	m := NewPrimWith[int32](4, 5, WithPinned())

	var base unsafe.Pointer
	m.WithPointer(func(ptr unsafe.Pointer) {
		base = ptr
		// The scoped pointer reads the live contents.
		vs := unsafe.Slice((*int32)(ptr), 4)
		assert.Equal(t, int32(5), vs[0])
		vs[1] = 42
	})

	assert.Equal(t, int32(42), m.Get(1))

	// The address is stable across calls for pinned storage.
	m.WithPointer(func(ptr unsafe.Pointer) {
		assert.Equal(t, base, ptr)
	})
}

func TestPrimPointerCopies(t *testing.T) {
	m := NewPrim[uint32](4)
	for i := 0; i < 4; i++ {
		m.Set(i, uint32(i+1))
	}

	ext := make([]uint32, 4)
	m.CopyToPointer(unsafe.Pointer(&ext[0]), 1, 3)
	assert.Equal(t, []uint32{2, 3, 4, 0}, ext)

	src := []uint32{9, 8}
	m.CopyFromPointer(unsafe.Pointer(&src[0]), 2, 2)
	assert.Equal(t, uint32(9), m.Get(2))
	assert.Equal(t, uint32(8), m.Get(3))

	a := m.Freeze(0, 4)
	out := make([]uint32, 4)
	a.CopyToPointer(unsafe.Pointer(&out[0]), 0, 4)
	assert.Equal(t, []uint32{1, 2, 9, 8}, out)
}

func TestDistinctArraysConcurrently(t *testing.T) {
	// Distinct mutable arrays carry no shared state; concurrent use is legal.
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			m := NewPrim[int64](256, WithPinned())
			for i := 0; i < m.Len(); i++ {
				m.Set(i, int64(w*1000+i))
			}
			for i := 0; i < m.Len(); i++ {
				if got := m.Get(i); got != int64(w*1000+i) {
					return fmt.Errorf("worker %d: index %d: got %d", w, i, got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkPrimMoveOverlap(b *testing.B) {
	sizes := []int{64, 1024, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			m := NewPrim[int64](size)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m.MoveFrom(1, m, 0, size-1)
			}
		})
	}
}

func BenchmarkBoxedMoveOverlap(b *testing.B) {
	sizes := []int{64, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			m := NewBoxedWith(size, 0)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m.MoveFrom(1, m, 0, size-1)
			}
		})
	}
}
