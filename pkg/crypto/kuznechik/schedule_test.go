package kuznechik

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKeyReference(t *testing.T) {
	c := newTestCipher(t)

	ks, err := c.ExpandKey(mustHex(t, testKeyHex))
	require.NoError(t, err)

	want := []string{
		"8899aabbccddeeff0011223344556677",
		"fedcba98765432100123456789abcdef",
		"db31485315694343228d6aef8cc78c44",
		"3d4553d8e9cfec6815ebadc40a9ffd04",
		"57646468c44a5e28d3e59246f429f1ac",
		"bd079435165c6432b532e82834da581b",
		"51e640757e8745de705727265a0098b1",
		"5a7925017b9fdd3ed72a91a22286f984",
		"bb44e25378c73123a5f32f73cdb6e517",
		"72e9dd7416bcf45b755dbaa88e4a4043",
	}
	for i, k := range ks {
		assert.Equal(t, want[i], k.String(), "K%d", i+1)
	}
}

func TestRoundConstants(t *testing.T) {
	c := newTestCipher(t)

	assert.Equal(t, "6ea276726c487ab85d27bd10dd849401", c.constants[0].String())
	assert.Equal(t, "dc87ece4d890f4b3ba4eb92079cbeb02", c.constants[1].String())

	seen := make(map[RoundKey]bool)
	for _, k := range c.constants {
		assert.False(t, seen[k])
		seen[k] = true
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	c := newTestCipher(t)
	r := rand.New(rand.NewSource(4))
	key := randomBytes(r, KeySize)
	keyCopy := append([]byte(nil), key...)

	first, err := c.ExpandKey(key)
	require.NoError(t, err)
	second, err := c.ExpandKey(key)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, keyCopy, key, "master key must not be modified")
}

func TestExpandKeyAvalanche(t *testing.T) {
	c := newTestCipher(t)
	key := mustHex(t, testKeyHex)

	base, err := c.ExpandKey(key)
	require.NoError(t, err)

	for bit := 0; bit < KeySize*8; bit++ {
		flipped := append([]byte(nil), key...)
		flipped[bit/8] ^= 1 << (bit % 8)

		ks, err := c.ExpandKey(flipped)
		require.NoError(t, err)
		assert.NotEqual(t, base, ks, "bit %d", bit)

		// every derived key depends on both halves
		for i := 2; i < Rounds; i++ {
			assert.NotEqual(t, base[i], ks[i], "bit %d key %d", bit, i)
		}
	}
}

func TestExpandKeyRejectsSize(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.ExpandKey(make([]byte, 16))
	assert.ErrorIs(t, err, ErrKeySize)
}

func TestScheduleWipe(t *testing.T) {
	c := newTestCipher(t)

	ks, err := c.ExpandKey(mustHex(t, testKeyHex))
	require.NoError(t, err)

	ks.Wipe()
	assert.Equal(t, Schedule{}, ks)
}
