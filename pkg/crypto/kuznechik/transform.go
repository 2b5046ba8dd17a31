package kuznechik

import "github.com/Davincible/kuznechik/pkg/crypto/galois"

// Byte-wise primitives. They are the definition the fused round tables must
// reproduce, and the key schedule runs on them directly.

func substitute(b []byte) {
	for i := range b[:BlockSize] {
		b[i] = pi[b[i]]
	}
}

func inverseSubstitute(b []byte) {
	for i := range b[:BlockSize] {
		b[i] = piInverse[b[i]]
	}
}

func xorBlock(dst, k []byte) {
	for i := range dst[:BlockSize] {
		dst[i] ^= k[i]
	}
}

// linearStep applies one step of the recurrence: every byte moves up one
// position and byte 0 becomes the weighted sum of the old block.
func (c *Cipher) linearStep(b []byte) {
	var acc byte
	for j := BlockSize - 1; j >= 0; j-- {
		acc ^= c.field.Mul(linearCoefficients[j], b[j])
	}
	copy(b[1:BlockSize], b[:BlockSize-1])
	b[0] = acc
}

func (c *Cipher) inverseLinearStep(b []byte) {
	var acc byte
	for j := 0; j < BlockSize; j++ {
		acc ^= c.field.Mul(inverseLinearCoefficients[j], b[j])
	}
	copy(b[:BlockSize-1], b[1:BlockSize])
	b[BlockSize-1] = acc
}

// linear is the full transform, BlockSize steps of the recurrence.
func (c *Cipher) linear(b []byte) {
	for i := 0; i < BlockSize; i++ {
		c.linearStep(b)
	}
}

func (c *Cipher) inverseLinear(b []byte) {
	for i := 0; i < BlockSize; i++ {
		c.inverseLinearStep(b)
	}
}

// transformRows derives the matrix of the full linear transform by running
// the recurrence over the identity: output byte k is rows[k]·input.
func transformRows(f *galois.Field) []galois.Polynomial {
	rows := identityRows()
	for step := 0; step < BlockSize; step++ {
		acc := galois.NewPolynomial(BlockSize)
		for i := BlockSize - 1; i >= 0; i-- {
			acc = acc.Add(rows[i].Scale(linearCoefficients[i], f))
		}
		copy(rows[1:], rows[:BlockSize-1])
		rows[0] = acc
	}
	return rows
}

// inverseTransformRows mirrors transformRows: coefficients are consumed
// low-to-high and rows shift towards index 0.
func inverseTransformRows(f *galois.Field) []galois.Polynomial {
	rows := identityRows()
	for step := 0; step < BlockSize; step++ {
		acc := galois.NewPolynomial(BlockSize)
		for i := 0; i < BlockSize; i++ {
			acc = acc.Add(rows[i].Scale(inverseLinearCoefficients[i], f))
		}
		copy(rows[:BlockSize-1], rows[1:])
		rows[BlockSize-1] = acc
	}
	return rows
}

func identityRows() []galois.Polynomial {
	rows := make([]galois.Polynomial, BlockSize)
	for i := range rows {
		rows[i] = galois.Unit(BlockSize, i)
	}
	return rows
}
