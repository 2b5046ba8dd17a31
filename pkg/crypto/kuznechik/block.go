package kuznechik

import (
	"crypto/cipher"
	"fmt"
)

// block binds a Cipher to one key with every round table built up front.
// It never changes after construction.
type block struct {
	first RoundKey
	enc   [Rounds - 1]*roundTable
	dec   [Rounds - 1]*roundTable
}

// NewBlock returns a crypto/cipher.Block for key. Building it costs eighteen
// round tables (about 1.1 MiB), after which each block is pure lookups; use
// it when many calls share one key. The returned value is safe for
// concurrent use.
func (c *Cipher) NewBlock(key []byte) (cipher.Block, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	ks := c.expandKey(key)
	defer ks.Wipe()

	b := &block{first: ks[0]}
	for round := 1; round < Rounds; round++ {
		b.enc[round-1] = c.encryptTable(&ks[round])
		b.dec[round-1] = c.decryptTable(&ks[round])
	}

	return b, nil
}

func (b *block) BlockSize() int {
	return BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic(fmt.Sprintf("kuznechik: input not full block (%d bytes)", len(src)))
	}
	if len(dst) < BlockSize {
		panic(fmt.Sprintf("kuznechik: output not full block (%d bytes)", len(dst)))
	}

	var buf [BlockSize]byte
	copy(buf[:], src)

	xorBlock(buf[:], b.first[:])
	for _, t := range b.enc {
		t.apply(buf[:])
	}

	copy(dst, buf[:])
}

func (b *block) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic(fmt.Sprintf("kuznechik: input not full block (%d bytes)", len(src)))
	}
	if len(dst) < BlockSize {
		panic(fmt.Sprintf("kuznechik: output not full block (%d bytes)", len(dst)))
	}

	var buf [BlockSize]byte
	copy(buf[:], src)

	substitute(buf[:])
	for i := len(b.dec) - 1; i >= 0; i-- {
		b.dec[i].apply(buf[:])
	}
	inverseSubstitute(buf[:])
	xorBlock(buf[:], b.first[:])

	copy(dst, buf[:])
}
