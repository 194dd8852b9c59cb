package crypto

import (
	"testing"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPair(t *testing.T) {
	pub1, priv1, err := GenerateKeyPair()
	require.NoError(t, err)
	pub2, priv2, err := GenerateKeyPair()
	require.NoError(t, err)

	assert.NotEqual(t, pub1, pub2)
	assert.NotEqual(t, priv1.Serialize(), priv2.Serialize())

	// compressed key prefix
	assert.Contains(t, []byte{0x02, 0x03}, pub1[0])
}

func TestPrivKeyFromBytes(t *testing.T) {
	pub, priv, err := GenerateKeyPair()
	require.NoError(t, err)

	restoredPub, restoredPriv := PrivKeyFromBytes(priv.Serialize())
	assert.Equal(t, pub, restoredPub)
	assert.Equal(t, priv.Serialize(), restoredPriv.Serialize())
}

func TestSignAndVerify(t *testing.T) {
	pub, priv, err := GenerateKeyPair()
	require.NoError(t, err)

	digest := Keccak256Hash([]byte("payload"))
	sig, err := Sign(digest, priv)
	require.NoError(t, err)

	assert.True(t, VerifySignature(pub, digest, sig))
	assert.False(t, VerifySignature(pub, Keccak256Hash([]byte("other")), sig))

	otherPub, _, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.False(t, VerifySignature(otherPub, digest, sig))

	// mangled signatures never verify
	assert.False(t, VerifySignature(pub, digest, sig[:len(sig)-1]))
	assert.False(t, VerifySignature(pub, digest, nil))
	assert.False(t, VerifySignature(common.PublicKey{}, digest, sig))
}

func TestKeccak256Hash(t *testing.T) {
	// well-known keccak256 of empty input
	assert.Equal(t, common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"), Keccak256Hash())

	// concatenation equals single write
	assert.Equal(t, Keccak256Hash([]byte("ab"), []byte("c")), Keccak256Hash([]byte("abc")))
}

func TestHash128(t *testing.T) {
	a := Hash128([]byte("creator"), []byte("data"))
	b := Hash128([]byte("creator"), []byte("data"))
	c := Hash128([]byte("creator"), []byte("other"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, [16]byte{}, a)
}
