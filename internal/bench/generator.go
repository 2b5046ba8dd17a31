package bench

import (
	"encoding/binary"
	"fmt"

	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"golang.org/x/crypto/chacha20"
)

// Generator is a deterministic byte source: the ChaCha20 keystream under a
// key holding the seed. Not for key material outside benchmarks.
type Generator struct {
	stream *chacha20.Cipher
}

func NewGenerator(seed uint64) (*Generator, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create keystream: %w", err)
	}
	return &Generator{stream: stream}, nil
}

// Data returns the next n bytes of the stream.
func (g *Generator) Data(n int) []byte {
	out := make([]byte, n)
	g.stream.XORKeyStream(out, out)
	return out
}

// Key returns the next cipher key from the stream.
func (g *Generator) Key() []byte {
	return g.Data(kuznechik.KeySize)
}
