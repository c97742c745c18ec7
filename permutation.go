package ascon

import "math/bits"

// state is the 320-bit permutation state: five 64-bit words.
type state [5]uint64

// roundConstants holds the full 12-round schedule. The constant for
// round index r is 0xf0 - r*0x10 + r*0x1.
var roundConstants = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// permute applies the last `rounds` rounds of the 12-round schedule to
// the state in place. Round counts above 12 are a programmer error.
func (s *state) permute(rounds int) {
	if rounds > len(roundConstants) {
		panic("ascon: round count exceeds permutation schedule")
	}

	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]
	for _, c := range roundConstants[len(roundConstants)-rounds:] {
		// Addition of round constant
		x2 ^= c

		// Substitution layer
		x0 ^= x4
		x4 ^= x3
		x2 ^= x1

		t0 := ^x0 & x1
		t1 := ^x1 & x2
		t2 := ^x2 & x3
		t3 := ^x3 & x4
		t4 := ^x4 & x0

		x0 ^= t1
		x1 ^= t2
		x2 ^= t3
		x3 ^= t4
		x4 ^= t0

		x1 ^= x0
		x0 ^= x4
		x3 ^= x2
		x2 = ^x2

		// Linear diffusion layer
		x0 ^= bits.RotateLeft64(x0, -19) ^ bits.RotateLeft64(x0, -28)
		x1 ^= bits.RotateLeft64(x1, -61) ^ bits.RotateLeft64(x1, -39)
		x2 ^= bits.RotateLeft64(x2, -1) ^ bits.RotateLeft64(x2, -6)
		x3 ^= bits.RotateLeft64(x3, -10) ^ bits.RotateLeft64(x3, -17)
		x4 ^= bits.RotateLeft64(x4, -7) ^ bits.RotateLeft64(x4, -41)
	}
	s[0], s[1], s[2], s[3], s[4] = x0, x1, x2, x3, x4
}
