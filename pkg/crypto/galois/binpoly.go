package galois

import (
	"fmt"
	"math/bits"
)

// Polynomials over GF(2) are held as bit masks, bit i being the coefficient of x^i.

// BitsFromUint expands a bit mask into a low-to-high bit vector.
func BitsFromUint(p uint32) []byte {
	n := bits.Len32(p)
	if n == 0 {
		return []byte{0}
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = byte(p>>i) & 1
	}
	return out
}

// UintFromBits packs a low-to-high bit vector into a bit mask.
func UintFromBits(v []byte) (uint32, error) {
	if len(v) > 32 {
		return 0, fmt.Errorf("%w: %d coefficients do not fit", ErrInvalidField, len(v))
	}

	var p uint32
	for i, b := range v {
		if b > 1 {
			return 0, fmt.Errorf("%w (position %d holds %d)", ErrInvalidBit, i, b)
		}
		p |= uint32(b) << i
	}
	return p, nil
}

// polyDegree returns the degree of p, or -1 for the zero polynomial.
func polyDegree(p uint32) int {
	return bits.Len32(p) - 1
}

// polyMod reduces a modulo m by repeated XOR of shifted copies of m.
func polyMod(a, m uint32) uint32 {
	md := polyDegree(m)
	for {
		d := polyDegree(a)
		if d < md {
			return a
		}
		a ^= m << (d - md)
	}
}

// irreducible reports whether p has no factor of degree 1..deg(p)/2.
func irreducible(p uint32) bool {
	d := polyDegree(p)
	if d < 1 {
		return false
	}

	limit := uint32(1) << (d/2 + 1)
	for q := uint32(2); q < limit; q++ {
		if polyMod(p, q) == 0 {
			return false
		}
	}
	return true
}
