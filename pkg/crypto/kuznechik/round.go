package kuznechik

import "encoding/binary"

// word is a 128-bit value held as two lanes. Block byte i sits in bits
// 8i..8i+7 of the little-endian pair (lo, hi).
type word struct {
	lo, hi uint64
}

func loadWord(b []byte) word {
	return word{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

func (w word) store(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], w.lo)
	binary.LittleEndian.PutUint64(b[8:16], w.hi)
}

// laneWord returns a word holding v at byte position i and zero elsewhere.
func laneWord(i int, v byte) word {
	if i < 8 {
		return word{lo: uint64(v) << (8 * i)}
	}
	return word{hi: uint64(v) << (8 * (i - 8))}
}

// roundTable fuses one round into lookups: entry i<<8|j is the whole
// round's contribution of byte value j at position i.
type roundTable [BlockSize * 256]word

// encryptTable folds substitution, the linear transform and the XOR with k.
func (c *Cipher) encryptTable(k *RoundKey) *roundTable {
	t := new(roundTable)
	var out [BlockSize]byte

	for i := 0; i < BlockSize; i++ {
		key := laneWord(i, k[i])
		for j := 0; j < 256; j++ {
			s := pi[j]
			for r := 0; r < BlockSize; r++ {
				out[r] = c.field.Mul(s, c.rows[r][i])
			}
			w := loadWord(out[:])
			t[i<<8|j] = word{lo: w.lo ^ key.lo, hi: w.hi ^ key.hi}
		}
	}

	return t
}

// decryptTable folds inverse substitution, the XOR with k and the inverse
// linear transform. The key byte enters before the transform, so no lane
// mask is added afterwards.
func (c *Cipher) decryptTable(k *RoundKey) *roundTable {
	t := new(roundTable)
	var out [BlockSize]byte

	for i := 0; i < BlockSize; i++ {
		for j := 0; j < 256; j++ {
			s := piInverse[j] ^ k[i]
			for r := 0; r < BlockSize; r++ {
				out[r] = c.field.Mul(s, c.invRows[r][i])
			}
			t[i<<8|j] = loadWord(out[:])
		}
	}

	return t
}

// apply runs one fused round over a single block in place.
func (t *roundTable) apply(block []byte) {
	_ = block[BlockSize-1]

	var lo, hi uint64
	for i := 0; i < BlockSize; i++ {
		e := &t[i<<8|int(block[i])]
		lo ^= e.lo
		hi ^= e.hi
	}
	word{lo: lo, hi: hi}.store(block)
}

// applyAll runs the round over every block of buf.
func (t *roundTable) applyAll(buf []byte) {
	for off := 0; off < len(buf); off += BlockSize {
		t.apply(buf[off : off+BlockSize])
	}
}

// wipe clears key material folded into the table.
func (t *roundTable) wipe() {
	*t = roundTable{}
}
