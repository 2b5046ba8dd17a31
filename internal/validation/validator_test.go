package validation

import (
	"strings"
	"testing"

	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/stretchr/testify/assert"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"00ff", true},
		{"  ABcd  ", true},
		{"", false},
		{"abc", false},
		{"zz", false},
		{"0x00", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateHex(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateKeyHex(t *testing.T) {
	key := strings.Repeat("ab", kuznechik.KeySize)

	assert.NoError(t, ValidateKeyHex(key))
	assert.NoError(t, ValidateKeyHex("0x"+key))
	assert.Error(t, ValidateKeyHex(key[:62]))
	assert.Error(t, ValidateKeyHex(key+"00"))
	assert.Error(t, ValidateKeyHex(strings.Repeat("g", 64)))
}

func TestValidateBlockAligned(t *testing.T) {
	assert.NoError(t, ValidateBlockAligned(16))
	assert.NoError(t, ValidateBlockAligned(1 << 20))
	assert.Error(t, ValidateBlockAligned(0))
	assert.ErrorIs(t, ValidateBlockAligned(17), kuznechik.ErrBufferSize)
	assert.ErrorIs(t, ValidateBlockAligned(15), kuznechik.ErrInvalidLength)
}

func TestValidateMnemonic(t *testing.T) {
	valid := strings.TrimSpace(strings.Repeat("abandon ", 23) + "art")

	assert.NoError(t, ValidateMnemonic(valid))
	assert.NoError(t, ValidateMnemonic("  "+valid+"\n"))
	assert.Error(t, ValidateMnemonic(""))
	assert.Error(t, ValidateMnemonic(strings.Repeat("abandon ", 12)))
	assert.Error(t, ValidateMnemonic(strings.Replace(valid, "art", "Art", 1)))
	assert.Error(t, ValidateMnemonic(strings.Replace(valid, "art", "ab", 1)))
}

func TestValidatePassphrase(t *testing.T) {
	assert.NoError(t, ValidatePassphrase(""))
	assert.NoError(t, ValidatePassphrase("пароль с пробелами"))
	assert.Error(t, ValidatePassphrase(strings.Repeat("a", 257)))
	assert.Error(t, ValidatePassphrase("a\x00b"))
	assert.Error(t, ValidatePassphrase("bad \xff byte"))
	assert.NoError(t, ValidatePassphrase("replacement \uFFFD char"))
}

func TestValidateWordCount(t *testing.T) {
	assert.True(t, ValidateWordCount(24))
	assert.False(t, ValidateWordCount(12))
}
