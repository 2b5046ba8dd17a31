package secure

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	b := FromBytes(key)
	assert.Equal(t, 32, b.Len())

	key[0] = 0xFF
	assert.Equal(t, byte(0x42), b.Bytes()[0], "buffer must own its copy")

	b.Destroy()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())
}

func TestBufferBytesIsCopy(t *testing.T) {
	b := FromBytes([]byte("secret key material"))
	defer b.Destroy()

	out := b.Bytes()
	Zero(out)
	assert.Equal(t, []byte("secret key material"), b.Bytes())
}

func TestZero(t *testing.T) {
	data := []byte("sensitive data to be zeroed")
	original := make([]byte, len(data))
	copy(original, data)

	Zero(data)

	for _, b := range data {
		assert.Equal(t, byte(0), b)
	}
	assert.NotEqual(t, original, data)

	Zero(nil)
}

func TestEqual(t *testing.T) {
	a := []byte("test data")
	b := []byte("test data")
	c := []byte("different")
	d := []byte("test dat")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
	assert.False(t, Equal(a, []byte{}))
}

func TestRandom(t *testing.T) {
	sizes := []int{16, 32, 64, 128}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			data, err := Random(size)
			require.NoError(t, err)
			assert.Len(t, data, size)

			data2, err := Random(size)
			require.NoError(t, err)
			assert.NotEqual(t, data, data2, "Random data should be different")
		})
	}

	data, err := Random(0)
	assert.NoError(t, err)
	assert.Empty(t, data)
}

func TestBufferThreadSafety(t *testing.T) {
	b := FromBytes([]byte("concurrent test data"))
	defer b.Destroy()

	done := make(chan bool, 2)

	go func() {
		for i := 0; i < 100; i++ {
			data := b.Bytes()
			assert.NotNil(t, data)
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 100; i++ {
			assert.Equal(t, 20, b.Len())
		}
		done <- true
	}()

	<-done
	<-done
}

func BenchmarkZero(b *testing.B) {
	data := make([]byte, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Zero(data)
	}
}

func BenchmarkEqual(b *testing.B) {
	a := bytes.Repeat([]byte{0x42}, 32)
	b1 := bytes.Repeat([]byte{0x42}, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Equal(a, b1)
	}
}
