package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

func TestAssetID_Deterministic(t *testing.T) {
	pub, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	id1 := NewAssetID("token.gold", pub)
	id2 := NewAssetID("token.gold", pub)
	assert.Equal(t, id1, id2)

	id3 := NewAssetID("token.silver", pub)
	assert.NotEqual(t, id1, id3)
}

func TestAssetID_CreatorBound(t *testing.T) {
	pub1, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)
	pub2, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	// same data, different issuers map to different assets
	assert.NotEqual(t, NewAssetID("token.gold", pub1), NewAssetID("token.gold", pub2))
}

func TestAssetID_ParseRoundtrip(t *testing.T) {
	pub, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	id := NewAssetID("token.gold", pub)
	parsed, err := ParseAssetID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseAssetID("abcd")
	assert.Equal(t, ErrInvalidAssetID, err)
	_, err = ParseAssetID("zz0102030405060708090a0b0c0d0e0f")
	assert.Equal(t, ErrInvalidAssetID, err)
}

func TestAssetFees_ForAmount(t *testing.T) {
	f := AssetFees{Fixed: 10, Tax: 2}
	assert.Equal(t, uint64(10), f.ForAmount(0))
	assert.Equal(t, uint64(30), f.ForAmount(10))

	// a schedule that would wrap saturates instead of undercharging
	wrap := AssetFees{Fixed: 1, Tax: math.MaxUint64}
	assert.Equal(t, uint64(math.MaxUint64), wrap.ForAmount(2))
	assert.Equal(t, uint64(math.MaxUint64), AssetFees{Fixed: 2, Tax: 1}.ForAmount(math.MaxUint64-1))
}

func TestAssetInfo_Merge(t *testing.T) {
	pub, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)
	other, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	info := &AssetInfo{Creator: pub, Amount: 10, Fees: AssetFees{Fixed: 1, Tax: 0}}

	assert.NoError(t, info.Merge(&AssetInfo{Creator: pub, Amount: 5, Fees: AssetFees{Fixed: 1, Tax: 0}}))
	assert.Equal(t, uint64(15), info.Amount)

	err = info.Merge(&AssetInfo{Creator: other, Amount: 5, Fees: AssetFees{Fixed: 1, Tax: 0}})
	assert.Equal(t, ExecInvalidAssetInfo, err)

	err = info.Merge(&AssetInfo{Creator: pub, Amount: 5, Fees: AssetFees{Fixed: 2, Tax: 0}})
	assert.Equal(t, ExecInvalidAssetInfo, err)
	assert.Equal(t, uint64(15), info.Amount)

	// a re-issuance that would wrap the circulating amount is rejected
	err = info.Merge(&AssetInfo{Creator: pub, Amount: math.MaxUint64 - 14, Fees: AssetFees{Fixed: 1, Tax: 0}})
	assert.Equal(t, ExecInvalidAssetInfo, err)
	assert.Equal(t, uint64(15), info.Amount)
}

func TestMetaAsset(t *testing.T) {
	pub, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)
	receiver, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	m := &MetaAsset{Data: "token.gold", Amount: 7, Fees: AssetFees{Fixed: 1, Tax: 2}, Receiver: receiver}
	assert.True(t, m.VerifyMeta())
	assert.Equal(t, NewAssetID("token.gold", pub), m.ID(pub))

	info := m.ToInfo(pub)
	assert.Equal(t, pub, info.Creator)
	assert.Equal(t, uint64(7), info.Amount)
	assert.Equal(t, m.Fees, info.Fees)

	bundle := m.ToBundle(pub)
	assert.Equal(t, m.ID(pub), bundle.ID)
	assert.Equal(t, uint64(7), bundle.Amount)

	zero := &MetaAsset{Data: "token.gold"}
	assert.False(t, zero.VerifyMeta())
}
