package types

import (
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// AddAssetsTx issues one or more assets. Every intent derives its
// identifier from the issuer's key and data string, so a re-submission of
// the same data by the same issuer merges into the existing registry entry
// instead of minting a new asset.
type AddAssetsTx struct {
	PubKey common.PublicKey `json:"pubKey"`
	Assets []MetaAsset      `json:"assets"`
	Seed   uint64           `json:"seed"`
	Sig    []byte           `json:"sig"`
}

func NewAddAssetsTx(pubKey common.PublicKey, assets []MetaAsset, seed uint64) *AddAssetsTx {
	return &AddAssetsTx{PubKey: pubKey, Assets: assets, Seed: seed}
}

func (tx *AddAssetsTx) Type() TxType { return TxAddAssets }

func (tx *AddAssetsTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxAddAssets)
	w.pubKey(tx.PubKey)
	w.metaAssets(tx.Assets)
	w.uint64(tx.Seed)
	return w
}

func (tx *AddAssetsTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *AddAssetsTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.Sig)
	return w.hash()
}

func (tx *AddAssetsTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.Sig = sig
	return nil
}

func (tx *AddAssetsTx) Verify() bool {
	if len(tx.Assets) == 0 {
		return false
	}
	for i := range tx.Assets {
		if !tx.Assets[i].VerifyMeta() {
			return false
		}
	}
	return crypto.VerifySignature(tx.PubKey, tx.SigHash(), tx.Sig)
}

func (tx *AddAssetsTx) String() string {
	return fmt.Sprintf("{Type: %s, PubKey: %s, Assets: %d, Seed: %d}", tx.Type(), tx.PubKey, len(tx.Assets), tx.Seed)
}

// DelAssetsTx retires asset amounts from the signer's wallet and from
// circulation.
type DelAssetsTx struct {
	PubKey common.PublicKey `json:"pubKey"`
	Assets []AssetBundle    `json:"assets"`
	Seed   uint64           `json:"seed"`
	Sig    []byte           `json:"sig"`
}

func NewDelAssetsTx(pubKey common.PublicKey, assets []AssetBundle, seed uint64) *DelAssetsTx {
	return &DelAssetsTx{PubKey: pubKey, Assets: assets, Seed: seed}
}

func (tx *DelAssetsTx) Type() TxType { return TxDelAssets }

func (tx *DelAssetsTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxDelAssets)
	w.pubKey(tx.PubKey)
	w.bundles(tx.Assets)
	w.uint64(tx.Seed)
	return w
}

func (tx *DelAssetsTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *DelAssetsTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.Sig)
	return w.hash()
}

func (tx *DelAssetsTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.Sig = sig
	return nil
}

func (tx *DelAssetsTx) Verify() bool {
	if len(tx.Assets) == 0 {
		return false
	}
	for _, b := range tx.Assets {
		if b.Amount == 0 {
			return false
		}
	}
	return crypto.VerifySignature(tx.PubKey, tx.SigHash(), tx.Sig)
}

func (tx *DelAssetsTx) String() string {
	return fmt.Sprintf("{Type: %s, PubKey: %s, Assets: %d, Seed: %d}", tx.Type(), tx.PubKey, len(tx.Assets), tx.Seed)
}
