// Package kuznechik implements the GOST 34.12-2018 128-bit block cipher
// "Kuznechik" with 256-bit keys.
//
// Every round of bulk encryption runs through a lookup table that fuses the
// substitution, the linear transform and the round key XOR, so a block costs
// sixteen lookups and sixteen XORs per round. Tables are rebuilt per call and
// per round key; a Cipher itself only holds the field and the transform
// matrices, which are read-only after New, so one Cipher may be shared by
// goroutines working on disjoint buffers.
//
// Buffers are processed as independent blocks. There is no chaining, no
// padding and no authentication: this is the raw block primitive.
package kuznechik

import (
	"fmt"

	"github.com/Davincible/kuznechik/pkg/crypto/galois"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 16

	// KeySize is the master key size in bytes.
	KeySize = 32

	// Rounds is the number of round keys in a schedule.
	Rounds = 10

	fieldDegree = 8
)

// Cipher carries the field and the precomputed linear transform matrices.
type Cipher struct {
	field     *galois.Field
	rows      []galois.Polynomial
	invRows   []galois.Polynomial
	constants [feistelGroups * feistelRounds]RoundKey
}

// New builds a cipher over the field of the given order and generator
// polynomial (low-to-high bit vector). The field must have degree 8.
func New(order int, generator []byte) (*Cipher, error) {
	f, err := galois.New(order, generator)
	if err != nil {
		return nil, fmt.Errorf("failed to build field: %w", err)
	}

	if f.Degree() != fieldDegree {
		return nil, fmt.Errorf("%w (got degree %d)", ErrUnsupportedField, f.Degree())
	}

	c := &Cipher{
		field:   f,
		rows:    transformRows(f),
		invRows: inverseTransformRows(f),
	}
	c.constants = c.roundConstants()

	return c, nil
}

// NewStandard builds the cipher over x^8 + x^7 + x^6 + x + 1.
func NewStandard() (*Cipher, error) {
	return New(256, galois.StandardPolynomial())
}

// Field returns the field the cipher computes in.
func (c *Cipher) Field() *galois.Field {
	return c.field
}

// Encrypt encrypts buf in place. len(buf) must be a multiple of BlockSize
// and key must be KeySize bytes.
func (c *Cipher) Encrypt(buf, key []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkBuffer(buf); err != nil {
		return err
	}

	ks := c.expandKey(key)
	defer ks.Wipe()

	for off := 0; off < len(buf); off += BlockSize {
		xorBlock(buf[off:off+BlockSize], ks[0][:])
	}

	for round := 1; round < Rounds; round++ {
		t := c.encryptTable(&ks[round])
		t.applyAll(buf)
		t.wipe()
	}

	return nil
}

// Decrypt reverses Encrypt in place under the same preconditions.
func (c *Cipher) Decrypt(buf, key []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkBuffer(buf); err != nil {
		return err
	}

	ks := c.expandKey(key)
	defer ks.Wipe()

	// The decrypt tables start with an inverse substitution; the forward
	// pass here cancels it for the first round.
	for off := 0; off < len(buf); off += BlockSize {
		substitute(buf[off : off+BlockSize])
	}

	for round := Rounds - 1; round >= 1; round-- {
		t := c.decryptTable(&ks[round])
		t.applyAll(buf)
		t.wipe()
	}

	for off := 0; off < len(buf); off += BlockSize {
		block := buf[off : off+BlockSize]
		inverseSubstitute(block)
		xorBlock(block, ks[0][:])
	}

	return nil
}

// EncryptBlock encrypts exactly one block from src into dst.
func (c *Cipher) EncryptBlock(dst, src, key []byte) error {
	if len(src) != BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("%w (src %d, dst %d)", ErrBufferSize, len(src), len(dst))
	}
	if err := checkKey(key); err != nil {
		return err
	}
	copy(dst, src)
	return c.Encrypt(dst[:BlockSize], key)
}

// DecryptBlock decrypts exactly one block from src into dst.
func (c *Cipher) DecryptBlock(dst, src, key []byte) error {
	if len(src) != BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("%w (src %d, dst %d)", ErrBufferSize, len(src), len(dst))
	}
	if err := checkKey(key); err != nil {
		return err
	}
	copy(dst, src)
	return c.Decrypt(dst[:BlockSize], key)
}
