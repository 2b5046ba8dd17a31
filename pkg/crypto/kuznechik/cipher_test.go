package kuznechik

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"sync"
	"testing"

	"github.com/Davincible/kuznechik/pkg/crypto/galois"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyHex        = "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"
	testPlaintextHex  = "1122334455667700ffeeddccbbaa9988"
	testCiphertextHex = "7f679d90bebc24305a468d42b9d4edcd"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func newTestCipher(t testing.TB) *Cipher {
	t.Helper()
	c, err := NewStandard()
	require.NoError(t, err)
	return c
}

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestReferenceVector(t *testing.T) {
	c := newTestCipher(t)
	key := mustHex(t, testKeyHex)

	data := mustHex(t, testPlaintextHex)
	require.NoError(t, c.Encrypt(data, key))
	assert.Equal(t, testCiphertextHex, hex.EncodeToString(data))

	require.NoError(t, c.Decrypt(data, key))
	assert.Equal(t, testPlaintextHex, hex.EncodeToString(data))
}

func TestNewWithExplicitPolynomial(t *testing.T) {
	c, err := New(256, []byte{1, 1, 0, 0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 256, c.Field().Order())
	require.NoError(t, c.SelfTest())
}

func TestNewRejectsFields(t *testing.T) {
	tests := []struct {
		name  string
		order int
		poly  []byte
		want  error
	}{
		{"degree four field", 16, galois.BitsFromUint(0x13), ErrUnsupportedField},
		{"degree mismatch", 256, galois.BitsFromUint(0x13), galois.ErrDegreeMismatch},
		{"reducible", 256, galois.BitsFromUint(0x1FF), galois.ErrReducible},
		{"bad order", 100, galois.StandardPolynomial(), galois.ErrFieldOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.order, tt.poly)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, galois.ErrInvalidField)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := newTestCipher(t)
	r := rand.New(rand.NewSource(1))

	for _, blocks := range []int{0, 1, 2, 7, 64, 257} {
		for trial := 0; trial < 4; trial++ {
			key := randomBytes(r, KeySize)
			plain := randomBytes(r, blocks*BlockSize)
			data := bytes.Clone(plain)

			require.NoError(t, c.Encrypt(data, key))
			if blocks > 0 {
				assert.NotEqual(t, plain, data)
			}
			require.NoError(t, c.Decrypt(data, key))
			assert.Equal(t, plain, data, "blocks=%d trial=%d", blocks, trial)
			assert.Len(t, data, blocks*BlockSize)
		}
	}
}

func TestEncryptMatchesBlockwise(t *testing.T) {
	c := newTestCipher(t)
	r := rand.New(rand.NewSource(2))
	key := randomBytes(r, KeySize)

	data := randomBytes(r, 8*BlockSize)
	want := make([]byte, len(data))
	for off := 0; off < len(data); off += BlockSize {
		require.NoError(t, c.EncryptBlock(want[off:off+BlockSize], data[off:off+BlockSize], key))
	}

	require.NoError(t, c.Encrypt(data, key))
	assert.Equal(t, want, data)
}

func TestBlockIndependence(t *testing.T) {
	c := newTestCipher(t)
	r := rand.New(rand.NewSource(3))
	key := randomBytes(r, KeySize)

	const blocks = 6
	base := randomBytes(r, blocks*BlockSize)
	baseCT := append([]byte(nil), base...)
	require.NoError(t, c.Encrypt(baseCT, key))

	for changed := 0; changed < blocks; changed++ {
		data := append([]byte(nil), base...)
		data[changed*BlockSize+r.Intn(BlockSize)] ^= 0x01

		require.NoError(t, c.Encrypt(data, key))
		for b := 0; b < blocks; b++ {
			got := data[b*BlockSize : (b+1)*BlockSize]
			want := baseCT[b*BlockSize : (b+1)*BlockSize]
			if b == changed {
				assert.NotEqual(t, want, got, "block %d should change", b)
			} else {
				assert.Equal(t, want, got, "block %d should not change", b)
			}
		}
	}
}

func TestIdenticalBlocksEncryptIdentically(t *testing.T) {
	c := newTestCipher(t)
	key := mustHex(t, testKeyHex)

	data := bytes.Repeat(mustHex(t, testPlaintextHex), 3)
	require.NoError(t, c.Encrypt(data, key))
	assert.Equal(t, bytes.Repeat(mustHex(t, testCiphertextHex), 3), data)
}

func TestInvalidLengths(t *testing.T) {
	c := newTestCipher(t)
	key := mustHex(t, testKeyHex)

	tests := []struct {
		name string
		buf  []byte
		key  []byte
		want error
	}{
		{"short key", make([]byte, BlockSize), key[:31], ErrKeySize},
		{"long key", make([]byte, BlockSize), append(append([]byte(nil), key...), 0), ErrKeySize},
		{"nil key", make([]byte, BlockSize), nil, ErrKeySize},
		{"partial block", make([]byte, 15), key, ErrBufferSize},
		{"block and a byte", make([]byte, 17), key, ErrBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]byte(nil), tt.buf...)

			err := c.Encrypt(tt.buf, tt.key)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidLength)

			err = c.Decrypt(tt.buf, tt.key)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidLength)

			assert.Equal(t, before, tt.buf, "rejected input must be untouched")
		})
	}
}

func TestSingleBlockHelpers(t *testing.T) {
	c := newTestCipher(t)
	key := mustHex(t, testKeyHex)
	pt := mustHex(t, testPlaintextHex)

	ct := make([]byte, BlockSize)
	require.NoError(t, c.EncryptBlock(ct, pt, key))
	assert.Equal(t, testCiphertextHex, hex.EncodeToString(ct))
	assert.Equal(t, testPlaintextHex, hex.EncodeToString(pt), "src must not change")

	out := make([]byte, BlockSize)
	require.NoError(t, c.DecryptBlock(out, ct, key))
	assert.Equal(t, pt, out)

	assert.ErrorIs(t, c.EncryptBlock(make([]byte, 8), pt, key), ErrBufferSize)
	assert.ErrorIs(t, c.DecryptBlock(out, pt[:8], key), ErrBufferSize)
	assert.ErrorIs(t, c.EncryptBlock(out, pt, key[:16]), ErrKeySize)
}

func TestConcurrentUse(t *testing.T) {
	c := newTestCipher(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			key := randomBytes(r, KeySize)
			plain := randomBytes(r, 32*BlockSize)
			data := append([]byte(nil), plain...)

			if err := c.Encrypt(data, key); err != nil {
				errs <- err
				return
			}
			if err := c.Decrypt(data, key); err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(plain, data) {
				errs <- assert.AnError
			}
		}(int64(g))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestSelfTest(t *testing.T) {
	require.NoError(t, newTestCipher(t).SelfTest())
}

func BenchmarkEncrypt(b *testing.B) {
	c := newTestCipher(b)
	key := mustHex(b, testKeyHex)
	data := make([]byte, 1<<20)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Encrypt(data, key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecrypt(b *testing.B) {
	c := newTestCipher(b)
	key := mustHex(b, testKeyHex)
	data := make([]byte, 1<<20)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Decrypt(data, key); err != nil {
			b.Fatal(err)
		}
	}
}
