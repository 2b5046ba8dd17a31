package keysource

import (
	"encoding/hex"
	"testing"

	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/crypto/mnemonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceKeyHex = "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"

func TestFromHex(t *testing.T) {
	want, err := hex.DecodeString(referenceKeyHex)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		err   bool
	}{
		{"plain", referenceKeyHex, false},
		{"prefixed", "0x" + referenceKeyHex, false},
		{"whitespace", "  " + referenceKeyHex + "\n", false},
		{"upper case", "8899AABBCCDDEEFF0011223344556677FEDCBA98765432100123456789ABCDEF", false},
		{"too short", referenceKeyHex[:32], true},
		{"odd length", referenceKeyHex[:63], true},
		{"not hex", "zz" + referenceKeyHex[2:], true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := FromHex(tt.input)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, key)
		})
	}

	_, err = FromHex(referenceKeyHex[:32])
	assert.ErrorIs(t, err, kuznechik.ErrKeySize)
}

func TestFromMnemonic(t *testing.T) {
	key, err := hex.DecodeString(referenceKeyHex)
	require.NoError(t, err)

	m, err := mnemonic.FromKey(key)
	require.NoError(t, err)

	got, err := FromMnemonic(m.Words())
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = FromMnemonic("not a real phrase")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestFromPassphrase(t *testing.T) {
	a := FromPassphrase([]byte("correct horse"), nil, 1000)
	b := FromPassphrase([]byte("correct horse"), []byte(DefaultSalt), 1000)
	c := FromPassphrase([]byte("correct horse"), []byte("other salt"), 1000)
	d := FromPassphrase([]byte("correct horse"), nil, 2000)

	assert.Len(t, a, kuznechik.KeySize)
	assert.Equal(t, a, b, "empty salt selects the default")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestResolve(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		buf, err := Resolve(Options{Hex: referenceKeyHex})
		require.NoError(t, err)
		defer buf.Destroy()
		assert.Equal(t, referenceKeyHex, hex.EncodeToString(buf.Bytes()))
	})

	t.Run("passphrase", func(t *testing.T) {
		buf, err := Resolve(Options{Passphrase: []byte("pw"), Iterations: 1000})
		require.NoError(t, err)
		defer buf.Destroy()
		assert.Equal(t, FromPassphrase([]byte("pw"), nil, 1000), buf.Bytes())
	})

	t.Run("none", func(t *testing.T) {
		_, err := Resolve(Options{})
		assert.ErrorIs(t, err, ErrNoKeySource)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := Resolve(Options{Hex: referenceKeyHex, Passphrase: []byte("pw")})
		assert.ErrorIs(t, err, ErrAmbiguousKeySource)
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := Resolve(Options{Hex: "abcd"})
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestGenerate(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)

	assert.Len(t, a, kuznechik.KeySize)
	assert.NotEqual(t, a, b)
}
