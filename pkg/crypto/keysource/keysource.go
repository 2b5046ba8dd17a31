// Package keysource turns user-supplied material into a 256-bit cipher key.
package keysource

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/crypto/mnemonic"
	"github.com/Davincible/kuznechik/pkg/secure"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor for passphrase keys.
	DefaultIterations = 100000

	// DefaultSalt is mixed into passphrase keys when no salt is configured.
	DefaultSalt = "kuznechik-key-v1"
)

var (
	ErrNoKeySource        = errors.New("no key source given (hex, mnemonic or passphrase)")
	ErrAmbiguousKeySource = errors.New("more than one key source given")
	ErrInvalidKey         = errors.New("invalid key")
)

// Options names the key material. Exactly one of Hex, Mnemonic and
// Passphrase must be set.
type Options struct {
	Hex        string
	Mnemonic   string
	Passphrase []byte

	// Salt and Iterations apply to Passphrase only.
	Salt       []byte
	Iterations int
}

// Resolve derives the key described by opts. The returned buffer should be
// destroyed once the key is no longer needed.
func Resolve(opts Options) (*secure.Buffer, error) {
	set := 0
	for _, ok := range []bool{opts.Hex != "", opts.Mnemonic != "", len(opts.Passphrase) > 0} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, ErrNoKeySource
	case set > 1:
		return nil, ErrAmbiguousKeySource
	}

	var (
		key []byte
		err error
	)
	switch {
	case opts.Hex != "":
		key, err = FromHex(opts.Hex)
	case opts.Mnemonic != "":
		key, err = FromMnemonic(opts.Mnemonic)
	default:
		key = FromPassphrase(opts.Passphrase, opts.Salt, opts.Iterations)
	}
	if err != nil {
		return nil, err
	}
	defer secure.Zero(key)

	return secure.FromBytes(key), nil
}

// FromHex decodes a 64-character hex key.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")

	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(key) != kuznechik.KeySize {
		secure.Zero(key)
		return nil, fmt.Errorf("%w: %w (got %d)", ErrInvalidKey, kuznechik.ErrKeySize, len(key))
	}
	return key, nil
}

// FromMnemonic decodes a 24-word BIP-39 key phrase.
func FromMnemonic(words string) ([]byte, error) {
	m, err := mnemonic.FromWords(words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return m.Key()
}

// FromPassphrase stretches a passphrase with PBKDF2-HMAC-SHA256. An empty
// salt or non-positive iteration count selects the defaults.
func FromPassphrase(passphrase, salt []byte, iterations int) []byte {
	if len(salt) == 0 {
		salt = []byte(DefaultSalt)
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return pbkdf2.Key(passphrase, salt, iterations, kuznechik.KeySize, sha256.New)
}

// Generate returns a fresh random key.
func Generate() ([]byte, error) {
	return secure.Random(kuznechik.KeySize)
}
