package kuznechik

import (
	"errors"
	"fmt"

	"github.com/Davincible/kuznechik/pkg/crypto/galois"
)

var (
	// ErrInvalidLength is the parent of every input size violation.
	ErrInvalidLength = errors.New("invalid input length")

	// ErrKeySize is returned when a master key is not exactly KeySize bytes.
	ErrKeySize = fmt.Errorf("%w: key must be %d bytes", ErrInvalidLength, KeySize)

	// ErrBufferSize is returned when a buffer is not a multiple of BlockSize.
	ErrBufferSize = fmt.Errorf("%w: buffer must be a multiple of %d bytes", ErrInvalidLength, BlockSize)

	// ErrUnsupportedField is returned when the field is not GF(2^8).
	ErrUnsupportedField = fmt.Errorf("%w: cipher requires a field of degree 8", galois.ErrInvalidField)

	// ErrSelfTest is returned when the reference vector does not reproduce.
	ErrSelfTest = errors.New("self test failed")
)

func checkKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w (got %d)", ErrKeySize, len(key))
	}
	return nil
}

func checkBuffer(buf []byte) error {
	if len(buf)%BlockSize != 0 {
		return fmt.Errorf("%w (got %d)", ErrBufferSize, len(buf))
	}
	return nil
}
