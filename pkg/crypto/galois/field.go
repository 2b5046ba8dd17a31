// Package galois implements arithmetic in the binary extension fields GF(2^m)
// used by the block cipher, together with fixed-length coefficient vectors
// over those fields.
//
// A field is defined by its order and a generator polynomial given as a
// low-to-high bit vector, so x^8 + x^7 + x^6 + x + 1 is written as
// {1, 1, 0, 0, 0, 0, 1, 1, 1}.
package galois

import (
	"fmt"
	"math/bits"
)

// StandardGenerator is x^8 + x^7 + x^6 + x + 1, the polynomial of GOST 34.12-2018.
const StandardGenerator = 0x1C3

// StandardPolynomial returns StandardGenerator as a low-to-high bit vector.
func StandardPolynomial() []byte {
	return BitsFromUint(StandardGenerator)
}

// Field is GF(2^m) with precomputed exponent, logarithm and product tables.
// It is immutable after New returns and safe for concurrent use.
type Field struct {
	order     int
	degree    int
	generator uint32

	exp []byte // exponent -> element, len order-1
	log []byte // element -> exponent, log[0] unused
	mul []byte // row stride of 256, indexed a<<8 | b
}

// New builds the field of the given order from a generator polynomial.
// The polynomial must have degree log2(order), be irreducible and have x as
// a primitive element.
func New(order int, generator []byte) (*Field, error) {
	degree, err := orderDegree(order)
	if err != nil {
		return nil, err
	}

	poly, err := UintFromBits(generator)
	if err != nil {
		return nil, err
	}

	if d := polyDegree(poly); d != degree {
		return nil, fmt.Errorf("%w (order %d needs degree %d, got %d)", ErrDegreeMismatch, order, degree, d)
	}

	if !irreducible(poly) {
		return nil, fmt.Errorf("%w (0x%X)", ErrReducible, poly)
	}

	f := &Field{
		order:     order,
		degree:    degree,
		generator: poly,
		exp:       make([]byte, order-1),
		log:       make([]byte, order),
		mul:       make([]byte, order<<8),
	}

	if err := f.buildLogTables(); err != nil {
		return nil, err
	}
	f.buildMulTable()

	return f, nil
}

// buildLogTables walks the powers of x starting from the unit element.
func (f *Field) buildLogTables() error {
	seen := make([]bool, f.order)

	cur := uint32(1)
	for i := 0; i < f.order-1; i++ {
		if cur == 0 || seen[cur] {
			return fmt.Errorf("%w (0x%X cycles after %d steps)", ErrNotPrimitive, f.generator, i)
		}
		seen[cur] = true

		f.exp[i] = byte(cur)
		f.log[cur] = byte(i)

		cur = polyMod(cur<<1, f.generator)
	}

	return nil
}

func (f *Field) buildMulTable() {
	for a := 0; a < f.order; a++ {
		for b := 0; b < f.order; b++ {
			f.mul[a<<8|b] = f.logMul(byte(a), byte(b))
		}
	}
}

// logMul multiplies through the exponent and logarithm tables.
func (f *Field) logMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%(f.order-1)]
}

// Mul returns a·b. Both operands must be elements of the field.
func (f *Field) Mul(a, b byte) byte {
	return f.mul[int(a)<<8|int(b)]
}

// Add returns a+b, which in characteristic 2 is XOR.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Exp returns x^i. Negative exponents are reduced modulo order-1.
func (f *Field) Exp(i int) byte {
	n := f.order - 1
	i %= n
	if i < 0 {
		i += n
	}
	return f.exp[i]
}

// Log returns the discrete logarithm of a to base x. The zero element has
// no logarithm and reports false.
func (f *Field) Log(a byte) (int, bool) {
	if a == 0 || int(a) >= f.order {
		return 0, false
	}
	return int(f.log[a]), true
}

// Inverse returns the multiplicative inverse of a, or 0 for a = 0.
func (f *Field) Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	return f.exp[(f.order-1-int(f.log[a]))%(f.order-1)]
}

// Order returns the number of elements in the field.
func (f *Field) Order() int {
	return f.order
}

// Degree returns m for GF(2^m).
func (f *Field) Degree() int {
	return f.degree
}

// Generator returns the generator polynomial as an integer bit mask.
func (f *Field) Generator() uint32 {
	return f.generator
}

func orderDegree(order int) (int, error) {
	if order < 4 || order > 256 || order&(order-1) != 0 {
		return 0, fmt.Errorf("%w (got %d)", ErrFieldOrder, order)
	}
	return bits.TrailingZeros(uint(order)), nil
}
