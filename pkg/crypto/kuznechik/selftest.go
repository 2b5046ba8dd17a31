package kuznechik

import (
	"fmt"

	"github.com/Davincible/kuznechik/pkg/secure"
)

// Reference vector from GOST 34.12-2018, appendix A.
var (
	referenceKey = [KeySize]byte{
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}
	referencePlaintext = [BlockSize]byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x00, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88,
	}
	referenceCiphertext = [BlockSize]byte{
		0x7f, 0x67, 0x9d, 0x90, 0xbe, 0xbc, 0x24, 0x30, 0x5a, 0x46, 0x8d, 0x42, 0xb9, 0xd4, 0xed, 0xcd,
	}
)

// SelfTest encrypts and decrypts the standard reference vector through both
// the bulk path and a cipher.Block.
func (c *Cipher) SelfTest() error {
	buf := referencePlaintext
	if err := c.Encrypt(buf[:], referenceKey[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	if !secure.Equal(buf[:], referenceCiphertext[:]) {
		return fmt.Errorf("%w: encrypt gave %x, want %x", ErrSelfTest, buf, referenceCiphertext)
	}

	if err := c.Decrypt(buf[:], referenceKey[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	if !secure.Equal(buf[:], referencePlaintext[:]) {
		return fmt.Errorf("%w: decrypt gave %x, want %x", ErrSelfTest, buf, referencePlaintext)
	}

	b, err := c.NewBlock(referenceKey[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}

	var out [BlockSize]byte
	b.Encrypt(out[:], referencePlaintext[:])
	if out != referenceCiphertext {
		return fmt.Errorf("%w: block encrypt gave %x, want %x", ErrSelfTest, out, referenceCiphertext)
	}
	b.Decrypt(out[:], out[:])
	if out != referencePlaintext {
		return fmt.Errorf("%w: block decrypt gave %x, want %x", ErrSelfTest, out, referencePlaintext)
	}

	return nil
}
