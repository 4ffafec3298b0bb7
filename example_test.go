package arrgo_test

import (
	"fmt"

	"github.com/hupe1980/arrgo"
	"github.com/hupe1980/arrgo/safe"
)

// Example_freezeThaw demonstrates the copying freeze/thaw round trip.
func Example_freezeThaw() {
	m := arrgo.NewBoxed[string](3)
	m.Set(0, "a")
	m.Set(1, "b")
	m.Set(2, "c")

	a := m.Freeze(0, 3) // immutable copy, m stays valid
	m.Set(0, "z")       // does not affect a

	fmt.Println(a.At(0), a.At(1), a.At(2))
	fmt.Println(m.Get(0))
	// Output:
	// a b c
	// z
}

// Example_overlappingMove demonstrates memmove semantics on one array.
func Example_overlappingMove() {
	b := arrgo.NewPrim[int32](5)
	for i := int32(0); i < 5; i++ {
		b.Set(int(i), (i+1)*10)
	}

	b.MoveFrom(0, b, 1, 4)

	for i := 0; i < b.Len(); i++ {
		fmt.Print(b.Get(i), " ")
	}
	// Output: 20 30 40 50 50
}

// Example_castPrim demonstrates zero-copy reinterpretation of element types.
func Example_castPrim() {
	m := arrgo.NewPrimWith[uint32](2, 0x01010101)
	bytes := arrgo.CastPrim[uint8](m.UnsafeFreeze())

	fmt.Println(bytes.Len(), bytes.At(0))
	// Output: 8 1
}

// Example_checkedFacade demonstrates the bounds-checked wrapper.
func Example_checkedFacade() {
	m := safe.Wrap[int](arrgo.NewSmallBoxedWith(3, 7))

	if _, err := m.Get(5); err != nil {
		fmt.Println("rejected:", err)
	}
	v, _ := m.Get(1)
	fmt.Println("value:", v)
	// Output:
	// rejected: arrgo: index out of range: index 5, length 3
	// value: 7
}
