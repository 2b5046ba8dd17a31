// Package secure holds helpers for handling key material in memory.
package secure

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"runtime"
	"sync"
)

// Buffer owns a copy of secret bytes, such as a master key, until Destroy.
type Buffer struct {
	data []byte
	mu   sync.RWMutex
}

// FromBytes copies data into a new Buffer. The caller may wipe data afterwards.
func FromBytes(data []byte) *Buffer {
	b := &Buffer{
		data: make([]byte, len(data)),
	}
	copy(b.data, data)
	return b
}

// Bytes returns a copy of the contents. Callers should Zero it when done.
func (b *Buffer) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Len returns the number of secret bytes held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Destroy wipes the contents and releases them.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	Zero(b.data)
	b.data = nil
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Random returns size bytes from the system CSPRNG.
func Random(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		Zero(b)
		return nil, fmt.Errorf("failed to generate secure random bytes: %w", err)
	}
	return b, nil
}

// Equal compares x and y in time independent of their contents.
func Equal(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}
