package galois

import "bytes"

// Polynomial is a fixed-length coefficient vector over a field. Operations
// return new values and never modify their receiver.
type Polynomial []byte

// NewPolynomial returns the zero polynomial with n coefficients.
func NewPolynomial(n int) Polynomial {
	return make(Polynomial, n)
}

// Unit returns the n-coefficient polynomial with a single 1 at position i.
func Unit(n, i int) Polynomial {
	p := NewPolynomial(n)
	p[i] = 1
	return p
}

// Scale multiplies every coefficient by c.
func (p Polynomial) Scale(c byte, f *Field) Polynomial {
	out := make(Polynomial, len(p))
	for i, v := range p {
		out[i] = f.Mul(v, c)
	}
	return out
}

// Add returns the coefficient-wise sum of p and q, which must have the same length.
func (p Polynomial) Add(q Polynomial) Polynomial {
	if len(p) != len(q) {
		panic("galois: polynomial length mismatch")
	}

	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = p[i] ^ q[i]
	}
	return out
}

// Eval returns the dot product of the coefficients with v.
func (p Polynomial) Eval(v []byte, f *Field) byte {
	if len(v) != len(p) {
		panic("galois: vector length mismatch")
	}

	var acc byte
	for i, c := range p {
		acc ^= f.Mul(v[i], c)
	}
	return acc
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	return append(Polynomial(nil), p...)
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	return bytes.Equal(p, q)
}
