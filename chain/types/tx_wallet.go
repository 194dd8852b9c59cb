package types

import (
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// CreateWalletTx seeds a wallet at the signer's public key with the
// network-configured initial balance.
type CreateWalletTx struct {
	PubKey common.PublicKey `json:"pubKey"`
	Seed   uint64           `json:"seed"`
	Sig    []byte           `json:"sig"`
}

func NewCreateWalletTx(pubKey common.PublicKey, seed uint64) *CreateWalletTx {
	return &CreateWalletTx{PubKey: pubKey, Seed: seed}
}

func (tx *CreateWalletTx) Type() TxType { return TxCreateWallet }

func (tx *CreateWalletTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxCreateWallet)
	w.pubKey(tx.PubKey)
	w.uint64(tx.Seed)
	return w
}

// SigHash is the digest the signer commits to.
func (tx *CreateWalletTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

// Hash uniquely identifies the signed transaction for status keying.
func (tx *CreateWalletTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.Sig)
	return w.hash()
}

func (tx *CreateWalletTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.Sig = sig
	return nil
}

func (tx *CreateWalletTx) Verify() bool {
	return crypto.VerifySignature(tx.PubKey, tx.SigHash(), tx.Sig)
}

func (tx *CreateWalletTx) String() string {
	return fmt.Sprintf("{Type: %s, PubKey: %s, Seed: %d}", tx.Type(), tx.PubKey, tx.Seed)
}

// MiningTx credits the configured emission reward to the signer's wallet.
// It models coin emission; the host typically submits it periodically.
type MiningTx struct {
	PubKey common.PublicKey `json:"pubKey"`
	Seed   uint64           `json:"seed"`
	Sig    []byte           `json:"sig"`
}

func NewMiningTx(pubKey common.PublicKey, seed uint64) *MiningTx {
	return &MiningTx{PubKey: pubKey, Seed: seed}
}

func (tx *MiningTx) Type() TxType { return TxMining }

func (tx *MiningTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxMining)
	w.pubKey(tx.PubKey)
	w.uint64(tx.Seed)
	return w
}

func (tx *MiningTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *MiningTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.Sig)
	return w.hash()
}

func (tx *MiningTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.Sig = sig
	return nil
}

func (tx *MiningTx) Verify() bool {
	return crypto.VerifySignature(tx.PubKey, tx.SigHash(), tx.Sig)
}

func (tx *MiningTx) String() string {
	return fmt.Sprintf("{Type: %s, PubKey: %s, Seed: %d}", tx.Type(), tx.PubKey, tx.Seed)
}
