package colony

import "math/bits"

// bitArray is a growable, bit-packed array of booleans.
//
// Adapted from the teacher's BitArray.go. The original was fixed-size,
// sized once at construction; FlaggedColony needs one bit of occupancy per
// slot (§4.1) and its slot count grows over the container's lifetime, so
// this version adds growTo and drops the fixed New(size) constructor.
type bitArray struct {
	words []uint
}

func (u *bitArray) len() int {
	return len(u.words) * bits.UintSize
}

// growTo ensures the array has room for at least n bits, zeroing the new ones.
func (u *bitArray) growTo(n int) {
	need := (n + bits.UintSize - 1) / bits.UintSize
	if need <= len(u.words) {
		return
	}
	grown := make([]uint, need)
	copy(grown, u.words)
	u.words = grown
}

func (u *bitArray) get(i int) bool {
	return (u.words[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *bitArray) set(i int) {
	u.words[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u *bitArray) clear(i int) {
	u.words[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}
