package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/crypto/mnemonic"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

// ValidateKeyHex checks for a hex-encoded 256-bit key, with or without a
// 0x prefix.
func ValidateKeyHex(input string) error {
	input = strings.TrimPrefix(strings.TrimSpace(input), "0x")
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	if len(input) != 2*kuznechik.KeySize {
		return fmt.Errorf("key must be %d hex characters (got %d)", 2*kuznechik.KeySize, len(input))
	}

	return nil
}

// ValidateBlockAligned checks that n bytes can be processed without padding.
func ValidateBlockAligned(n int) error {
	if n == 0 {
		return fmt.Errorf("input is empty")
	}

	if n%kuznechik.BlockSize != 0 {
		return fmt.Errorf("%w (got %d, %d bytes short of the next block)",
			kuznechik.ErrBufferSize, n, kuznechik.BlockSize-n%kuznechik.BlockSize)
	}

	return nil
}

// ValidateMnemonic checks the shape of a key phrase. Checksum and
// word list membership are verified when the phrase is decoded.
func ValidateMnemonic(words string) error {
	words = strings.TrimSpace(words)
	if words == "" {
		return fmt.Errorf("mnemonic cannot be empty")
	}

	wordList := strings.Fields(words)
	if !ValidateWordCount(len(wordList)) {
		return fmt.Errorf("mnemonic must have %d words (got %d)", mnemonic.WordCount, len(wordList))
	}

	for i, word := range wordList {
		if len(word) < 3 || len(word) > 8 {
			return fmt.Errorf("word %d has invalid length: %s", i+1, word)
		}

		for _, ch := range word {
			if ch < 'a' || ch > 'z' {
				return fmt.Errorf("word %d contains invalid characters: %s", i+1, word)
			}
		}
	}

	return nil
}

func ValidatePassphrase(passphrase string) error {
	if len(passphrase) > 256 {
		return fmt.Errorf("passphrase too long (max 256 characters)")
	}

	if !utf8.ValidString(passphrase) {
		return fmt.Errorf("passphrase is not valid UTF-8")
	}

	for i, ch := range passphrase {
		if ch == 0 {
			return fmt.Errorf("passphrase contains null character at position %d", i)
		}
	}

	return nil
}

// ValidateWordCount reports whether count matches a 256-bit key phrase.
func ValidateWordCount(count int) bool {
	return count == mnemonic.WordCount
}
