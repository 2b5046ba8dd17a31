// Package mnemonic writes 256-bit cipher keys as 24-word BIP-39 phrases.
package mnemonic

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// KeyBits is the entropy carried by a key phrase.
	KeyBits = 256

	// WordCount is the number of words in a key phrase.
	WordCount = 24
)

var (
	// ErrInvalidMnemonic is returned for phrases that fail the BIP-39 checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	// ErrKeyLength is returned when a key or phrase does not carry exactly 256 bits.
	ErrKeyLength = fmt.Errorf("key must be %d bytes", KeyBits/8)
)

// Mnemonic is a 24-word phrase encoding one key.
type Mnemonic struct {
	words []string
}

// New draws a fresh random key and returns its phrase.
func New() (*Mnemonic, error) {
	entropy, err := bip39.NewEntropy(KeyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	return FromKey(entropy)
}

// FromWords parses a phrase. Extra whitespace between words is ignored.
func FromWords(words string) (*Mnemonic, error) {
	fields := strings.Fields(words)
	if len(fields) != WordCount {
		return nil, fmt.Errorf("%w: need %d words, got %d", ErrKeyLength, WordCount, len(fields))
	}

	normalized := strings.Join(fields, " ")
	if !bip39.IsMnemonicValid(normalized) {
		return nil, ErrInvalidMnemonic
	}

	return &Mnemonic{words: fields}, nil
}

// FromKey encodes a 32-byte key.
func FromKey(key []byte) (*Mnemonic, error) {
	if len(key) != KeyBits/8 {
		return nil, fmt.Errorf("%w (got %d)", ErrKeyLength, len(key))
	}

	phrase, err := bip39.NewMnemonic(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode key: %w", err)
	}

	return &Mnemonic{
		words: strings.Split(phrase, " "),
	}, nil
}

// Words returns the phrase as a single space-separated string.
func (m *Mnemonic) Words() string {
	return strings.Join(m.words, " ")
}

// WordList returns a copy of the individual words.
func (m *Mnemonic) WordList() []string {
	result := make([]string, len(m.words))
	copy(result, m.words)
	return result
}

// WordCount returns the number of words in the phrase.
func (m *Mnemonic) WordCount() int {
	return len(m.words)
}

// Key decodes the phrase back into the 32-byte key.
func (m *Mnemonic) Key() ([]byte, error) {
	key, err := bip39.EntropyFromMnemonic(m.Words())
	if err != nil {
		return nil, fmt.Errorf("failed to get key from mnemonic: %w", err)
	}
	return key, nil
}

// Fingerprint returns the first four bytes of SHA-256 over the key, in hex.
// It identifies a key without revealing it.
func Fingerprint(key []byte) string {
	h := sha256.Sum256(key)
	return hex.EncodeToString(h[:4])
}
