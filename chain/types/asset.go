package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

const AssetIDLength = 16

var (
	ErrInvalidAssetID = errors.New("asset id decode fail")
)

// AssetID is the 128-bit identifier of an asset, deterministically derived
// from the creator's public key and an opaque data string. The creator key
// is part of the digest input, so two creators issuing the same data string
// get different identifiers, while re-issuance by the same creator always
// maps to the same one.
type AssetID [AssetIDLength]byte

func NewAssetID(data string, creator common.PublicKey) AssetID {
	return AssetID(crypto.Hash128(creator.Bytes(), []byte(data)))
}

// ParseAssetID decodes a 32 character hex string.
func ParseAssetID(s string) (AssetID, error) {
	if len(s) != AssetIDLength*2 {
		return AssetID{}, ErrInvalidAssetID
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return AssetID{}, ErrInvalidAssetID
	}
	var id AssetID
	copy(id[:], b)
	return id, nil
}

func (id AssetID) Bytes() []byte { return id[:] }

func (id AssetID) String() string {
	return hex.EncodeToString(id[:])
}

func (id AssetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AssetID) UnmarshalText(input []byte) error {
	parsed, err := ParseAssetID(string(input))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetBundle is a quantity of one asset, the unit moved by the transfer
// primitives.
type AssetBundle struct {
	ID     AssetID `json:"id"`
	Amount uint64  `json:"amount"`
}

// NewAssetBundle derives the bundle's identifier from the data string and
// creator key.
func NewAssetBundle(data string, amount uint64, creator common.PublicKey) AssetBundle {
	return AssetBundle{ID: NewAssetID(data, creator), Amount: amount}
}

func (b AssetBundle) String() string {
	return fmt.Sprintf("{ID: %s, Amount: %d}", b.ID, b.Amount)
}

// AssetFees is the fee schedule attached to an asset at issuance: a fixed
// component per transaction touching the asset plus a per-unit tax, both
// paid to the asset's creator.
type AssetFees struct {
	Fixed uint64 `json:"fixed"`
	Tax   uint64 `json:"tax"`
}

// ForAmount returns the fee owed to the creator for moving amount units.
// The result saturates instead of wrapping, so a pathological schedule
// makes the transfer unpayable rather than nearly free.
func (f AssetFees) ForAmount(amount uint64) uint64 {
	if f.Tax != 0 && amount > math.MaxUint64/f.Tax {
		return math.MaxUint64
	}
	tax := f.Tax * amount
	if f.Fixed > math.MaxUint64-tax {
		return math.MaxUint64
	}
	return f.Fixed + tax
}

// AssetInfo is the registry entry of one asset: who issued it, how much is
// in circulation across all wallets, and its fee schedule.
type AssetInfo struct {
	Creator common.PublicKey `json:"creator"`
	Amount  uint64           `json:"amount"`
	Fees    AssetFees        `json:"fees"`
}

func (info *AssetInfo) Clone() *AssetInfo {
	cpy := *info
	return &cpy
}

// Merge folds a re-issuance into an existing registry entry. The circulating
// amount grows; a different creator or fee schedule is a hard failure.
func (info *AssetInfo) Merge(other *AssetInfo) error {
	if info.Creator != other.Creator {
		return ExecInvalidAssetInfo
	}
	if info.Fees != other.Fees {
		return ExecInvalidAssetInfo
	}
	if info.Amount > math.MaxUint64-other.Amount {
		return ExecInvalidAssetInfo
	}
	info.Amount += other.Amount
	return nil
}

func (info *AssetInfo) String() string {
	set := []string{
		fmt.Sprintf("Creator: %s", info.Creator),
		fmt.Sprintf("Amount: %d", info.Amount),
		fmt.Sprintf("Fees: {Fixed: %d, Tax: %d}", info.Fees.Fixed, info.Fees.Tax),
	}
	return fmt.Sprintf("{%s}", strings.Join(set, ", "))
}

// MetaAsset is one issuance intent inside an AddAssets transaction.
type MetaAsset struct {
	Data     string           `json:"data"`
	Amount   uint64           `json:"amount"`
	Fees     AssetFees        `json:"fees"`
	Receiver common.PublicKey `json:"receiver"`
}

// VerifyMeta reports whether the intent is structurally sound.
func (m *MetaAsset) VerifyMeta() bool {
	return m.Amount > 0
}

// ID derives the asset identifier the intent maps to under creator.
func (m *MetaAsset) ID(creator common.PublicKey) AssetID {
	return NewAssetID(m.Data, creator)
}

// ToInfo builds the registry entry this intent contributes.
func (m *MetaAsset) ToInfo(creator common.PublicKey) *AssetInfo {
	return &AssetInfo{Creator: creator, Amount: m.Amount, Fees: m.Fees}
}

// ToBundle builds the wallet credit this intent produces.
func (m *MetaAsset) ToBundle(creator common.PublicKey) AssetBundle {
	return AssetBundle{ID: m.ID(creator), Amount: m.Amount}
}
