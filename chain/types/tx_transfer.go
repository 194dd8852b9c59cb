package types

import (
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// TransferTx moves coins and asset bundles from the signer to a recipient,
// with an optional free-text annotation.
type TransferTx struct {
	From    common.PublicKey `json:"from"`
	To      common.PublicKey `json:"to"`
	Amount  uint64           `json:"amount"`
	Assets  []AssetBundle    `json:"assets,omitempty"`
	Message string           `json:"message,omitempty"`
	Seed    uint64           `json:"seed"`
	Sig     []byte           `json:"sig"`
}

func NewTransferTx(from, to common.PublicKey, amount uint64, assets []AssetBundle, message string, seed uint64) *TransferTx {
	return &TransferTx{From: from, To: to, Amount: amount, Assets: assets, Message: message, Seed: seed}
}

func (tx *TransferTx) Type() TxType { return TxTransfer }

func (tx *TransferTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxTransfer)
	w.pubKey(tx.From)
	w.pubKey(tx.To)
	w.uint64(tx.Amount)
	w.bundles(tx.Assets)
	w.str(tx.Message)
	w.uint64(tx.Seed)
	return w
}

func (tx *TransferTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *TransferTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.Sig)
	return w.hash()
}

func (tx *TransferTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.Sig = sig
	return nil
}

func (tx *TransferTx) Verify() bool {
	if tx.From == tx.To {
		return false
	}
	for _, b := range tx.Assets {
		if b.Amount == 0 {
			return false
		}
	}
	return crypto.VerifySignature(tx.From, tx.SigHash(), tx.Sig)
}

func (tx *TransferTx) String() string {
	return fmt.Sprintf("{Type: %s, From: %s, To: %s, Amount: %d, Assets: %d, Seed: %d}",
		tx.Type(), tx.From, tx.To, tx.Amount, len(tx.Assets), tx.Seed)
}
