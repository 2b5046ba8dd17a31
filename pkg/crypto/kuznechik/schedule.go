package kuznechik

import (
	"encoding/hex"

	"github.com/Davincible/kuznechik/pkg/secure"
)

const (
	feistelGroups = 4
	feistelRounds = 8
)

// RoundKey is one 128-bit key mixed into the block once per round.
type RoundKey [BlockSize]byte

// String returns the key as lowercase hex.
func (k RoundKey) String() string {
	return hex.EncodeToString(k[:])
}

// Schedule is the ordered set of round keys derived from a master key.
// Encryption consumes it front to back, decryption back to front.
type Schedule [Rounds]RoundKey

// Wipe zeroes every round key.
func (s *Schedule) Wipe() {
	for i := range s {
		secure.Zero(s[i][:])
	}
}

// ExpandKey derives the round keys for a KeySize-byte master key.
func (c *Cipher) ExpandKey(key []byte) (Schedule, error) {
	if err := checkKey(key); err != nil {
		return Schedule{}, err
	}
	return c.expandKey(key), nil
}

// expandKey runs the Feistel network. The two halves of the master key are
// round keys 0 and 1; every group of eight rounds yields the next pair.
func (c *Cipher) expandKey(key []byte) Schedule {
	var ks Schedule
	copy(ks[0][:], key[:BlockSize])
	copy(ks[1][:], key[BlockSize:KeySize])

	l, r := ks[0], ks[1]
	for group := 1; group <= feistelGroups; group++ {
		for j := 0; j < feistelRounds; j++ {
			l, r = c.feistel(l, r, &c.constants[(group-1)*feistelRounds+j])
		}
		ks[2*group], ks[2*group+1] = l, r
	}

	return ks
}

// feistel is one step: (L, R) -> (LS(L^C)^R, L).
func (c *Cipher) feistel(l, r RoundKey, k *RoundKey) (RoundKey, RoundKey) {
	next := l
	xorBlock(next[:], k[:])
	substitute(next[:])
	c.linear(next[:])
	xorBlock(next[:], r[:])
	return next, l
}

// roundConstants returns C_1..C_32, each the linear transform of a zero
// block whose last byte is the constant's index.
func (c *Cipher) roundConstants() [feistelGroups * feistelRounds]RoundKey {
	var out [feistelGroups * feistelRounds]RoundKey
	for i := range out {
		out[i][BlockSize-1] = byte(i + 1)
		c.linear(out[i][:])
	}
	return out
}
