package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_SetBytes(t *testing.T) {
	// shorter input is left padded
	h := BytesToHash([]byte{0x01, 0x02})
	assert.Equal(t, byte(0x01), h[HashLength-2])
	assert.Equal(t, byte(0x02), h[HashLength-1])

	// longer input is cropped from the left
	long := make([]byte, HashLength+2)
	long[0] = 0xff
	long[2] = 0xaa
	h = BytesToHash(long)
	assert.Equal(t, byte(0xaa), h[0])
}

func TestHash_MarshalText(t *testing.T) {
	h := HexToHash("0x0102")
	text, err := h.MarshalText()
	assert.NoError(t, err)

	var decoded Hash
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, h, decoded)

	assert.Equal(t, ErrInvalidHash, decoded.UnmarshalText([]byte("0x0102")))
}

func TestPublicKey_Base58(t *testing.T) {
	var k PublicKey
	for i := range k {
		k[i] = byte(i + 1)
	}

	parsed, err := ParsePubKey(k.String())
	assert.NoError(t, err)
	assert.Equal(t, k, parsed)

	_, err = ParsePubKey("abc")
	assert.Equal(t, ErrInvalidPublicKey, err)
	_, err = ParsePubKey("0OIl")
	assert.Equal(t, ErrInvalidPublicKey, err)
}

func TestPublicKey_JSON(t *testing.T) {
	var k PublicKey
	k[0] = 0x02
	k[32] = 0x99

	data, err := json.Marshal(k)
	assert.NoError(t, err)

	var decoded PublicKey
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, k, decoded)
}

func TestFromHex(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02}, FromHex("0x0102"))
	assert.Equal(t, []byte{0x01, 0x02}, FromHex("0102"))
	// odd length is left padded with a zero
	assert.Equal(t, []byte{0x01, 0x02}, FromHex("0x102"))
	assert.Nil(t, FromHex("0xzz"))
}
