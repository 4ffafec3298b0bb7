package bitset

// Bits is a word-packed bitmap of fixed length. It carries no
// synchronization; the owning array serializes all access.
type Bits []uint64

// New returns a bitmap able to hold n bits, all clear.
func New(n int) Bits {
	return make(Bits, (n+63)/64)
}

// Set sets bit i.
func (b Bits) Set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// Clear clears bit i.
func (b Bits) Clear(i int) {
	b[i>>6] &^= 1 << (uint(i) & 63)
}

// Test reports whether bit i is set.
func (b Bits) Test(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// SetAll sets the first n bits, where n is the bit count the bitmap was
// created with. Bits past n in the last word stay clear.
func (b Bits) SetAll(n int) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = ^uint64(0)
	}
	if r := n & 63; r != 0 {
		b[len(b)-1] = 1<<r - 1
	}
}
