package types

import (
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// ExchangeOffer is the payload both parties of a two-party swap commit to:
// what the sender gives (coins and assets), what the recipient gives back,
// and who bears the network fee.
type ExchangeOffer struct {
	Sender          common.PublicKey `json:"sender"`
	SenderAssets    []AssetBundle    `json:"senderAssets,omitempty"`
	SenderValue     uint64           `json:"senderValue"`
	Recipient       common.PublicKey `json:"recipient"`
	RecipientAssets []AssetBundle    `json:"recipientAssets,omitempty"`
	FeeStrategy     FeeStrategy      `json:"feeStrategy"`
}

func (o *ExchangeOffer) write(w *canonicalWriter) {
	w.pubKey(o.Sender)
	w.bundles(o.SenderAssets)
	w.uint64(o.SenderValue)
	w.pubKey(o.Recipient)
	w.bundles(o.RecipientAssets)
	w.uint8(uint8(o.FeeStrategy))
}

// Hash is the digest counter-signers commit to.
func (o *ExchangeOffer) Hash() common.Hash {
	w := newCanonicalWriter(TxExchange)
	o.write(w)
	return w.hash()
}

func (o *ExchangeOffer) verifyBundles() bool {
	for _, b := range append(append([]AssetBundle{}, o.SenderAssets...), o.RecipientAssets...) {
		if b.Amount == 0 {
			return false
		}
	}
	return true
}

// ExchangeTx swaps coin value and asset bundles between two independently
// signed parties in one atomic step. The sender signs the full transaction,
// the recipient counter-signs the offer payload.
type ExchangeTx struct {
	Offer        ExchangeOffer `json:"offer"`
	Seed         uint64        `json:"seed"`
	DataInfo     string        `json:"dataInfo,omitempty"`
	RecipientSig []byte        `json:"recipientSig"`
	SenderSig    []byte        `json:"senderSig"`
}

func NewExchangeTx(offer ExchangeOffer, seed uint64, dataInfo string) *ExchangeTx {
	return &ExchangeTx{Offer: offer, Seed: seed, DataInfo: dataInfo}
}

func (tx *ExchangeTx) Type() TxType { return TxExchange }

func (tx *ExchangeTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxExchange)
	tx.Offer.write(w)
	w.uint64(tx.Seed)
	w.str(tx.DataInfo)
	w.bytes(tx.RecipientSig)
	return w
}

// SigHash is the digest the sender commits to. It covers the counter
// signature, so the offer cannot be rebound after the recipient signed.
func (tx *ExchangeTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *ExchangeTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.SenderSig)
	return w.hash()
}

// CoSign records the recipient's signature over the offer. Must happen
// before Sign.
func (tx *ExchangeTx) CoSign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.RecipientSig = sig
	return nil
}

// Sign records the sender's signature over the full transaction.
func (tx *ExchangeTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.SenderSig = sig
	return nil
}

func (tx *ExchangeTx) Verify() bool {
	offer := &tx.Offer
	if offer.Sender == offer.Recipient {
		return false
	}
	// the intermediary strategy is reserved for the brokered variant
	switch offer.FeeStrategy {
	case FeeStrategySender, FeeStrategyRecipient, FeeStrategySenderAndRecipient:
	default:
		return false
	}
	if !offer.verifyBundles() {
		return false
	}
	if !crypto.VerifySignature(offer.Recipient, offer.Hash(), tx.RecipientSig) {
		return false
	}
	return crypto.VerifySignature(offer.Sender, tx.SigHash(), tx.SenderSig)
}

func (tx *ExchangeTx) String() string {
	return fmt.Sprintf("{Type: %s, Sender: %s, Recipient: %s, Value: %d, Strategy: %s, Seed: %d}",
		tx.Type(), tx.Offer.Sender, tx.Offer.Recipient, tx.Offer.SenderValue, tx.Offer.FeeStrategy, tx.Seed)
}

// Intermediary is the brokering party of an intermediary-backed offer and
// the commission it charges for its service.
type Intermediary struct {
	PubKey     common.PublicKey `json:"pubKey"`
	Commission uint64           `json:"commission"`
}

// ExchangeOfferIntermediary extends ExchangeOffer with a brokering party.
// The intermediary entry is part of the offer digest, so every signature
// binds all three identities together.
type ExchangeOfferIntermediary struct {
	Intermediary    Intermediary     `json:"intermediary"`
	Sender          common.PublicKey `json:"sender"`
	SenderAssets    []AssetBundle    `json:"senderAssets,omitempty"`
	SenderValue     uint64           `json:"senderValue"`
	Recipient       common.PublicKey `json:"recipient"`
	RecipientAssets []AssetBundle    `json:"recipientAssets,omitempty"`
	FeeStrategy     FeeStrategy      `json:"feeStrategy"`
}

func (o *ExchangeOfferIntermediary) write(w *canonicalWriter) {
	w.pubKey(o.Intermediary.PubKey)
	w.uint64(o.Intermediary.Commission)
	w.pubKey(o.Sender)
	w.bundles(o.SenderAssets)
	w.uint64(o.SenderValue)
	w.pubKey(o.Recipient)
	w.bundles(o.RecipientAssets)
	w.uint8(uint8(o.FeeStrategy))
}

func (o *ExchangeOfferIntermediary) Hash() common.Hash {
	w := newCanonicalWriter(TxExchangeIntermediary)
	o.write(w)
	return w.hash()
}

func (o *ExchangeOfferIntermediary) verifyBundles() bool {
	for _, b := range append(append([]AssetBundle{}, o.SenderAssets...), o.RecipientAssets...) {
		if b.Amount == 0 {
			return false
		}
	}
	return true
}

// ExchangeIntermediaryTx is the brokered variant of ExchangeTx: a third
// signing party may bear the fees under the Intermediary strategy and earns
// a commission from the offer's sender.
type ExchangeIntermediaryTx struct {
	Offer           ExchangeOfferIntermediary `json:"offer"`
	Seed            uint64                    `json:"seed"`
	DataInfo        string                    `json:"dataInfo,omitempty"`
	RecipientSig    []byte                    `json:"recipientSig"`
	IntermediarySig []byte                    `json:"intermediarySig"`
	SenderSig       []byte                    `json:"senderSig"`
}

func NewExchangeIntermediaryTx(offer ExchangeOfferIntermediary, seed uint64, dataInfo string) *ExchangeIntermediaryTx {
	return &ExchangeIntermediaryTx{Offer: offer, Seed: seed, DataInfo: dataInfo}
}

func (tx *ExchangeIntermediaryTx) Type() TxType { return TxExchangeIntermediary }

func (tx *ExchangeIntermediaryTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxExchangeIntermediary)
	tx.Offer.write(w)
	w.uint64(tx.Seed)
	w.str(tx.DataInfo)
	w.bytes(tx.RecipientSig)
	w.bytes(tx.IntermediarySig)
	return w
}

func (tx *ExchangeIntermediaryTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *ExchangeIntermediaryTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.SenderSig)
	return w.hash()
}

// CoSign records the recipient's signature over the offer.
func (tx *ExchangeIntermediaryTx) CoSign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.RecipientSig = sig
	return nil
}

// SignIntermediary records the intermediary's signature over the offer.
func (tx *ExchangeIntermediaryTx) SignIntermediary(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.IntermediarySig = sig
	return nil
}

// Sign records the sender's signature over the full transaction. Must
// happen after both co-signatures.
func (tx *ExchangeIntermediaryTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.SenderSig = sig
	return nil
}

func (tx *ExchangeIntermediaryTx) Verify() bool {
	offer := &tx.Offer
	if offer.Sender == offer.Recipient {
		return false
	}
	if offer.Intermediary.PubKey == offer.Sender || offer.Intermediary.PubKey == offer.Recipient {
		return false
	}
	if !offer.FeeStrategy.Valid() {
		return false
	}
	if !offer.verifyBundles() {
		return false
	}
	offerHash := offer.Hash()
	if !crypto.VerifySignature(offer.Recipient, offerHash, tx.RecipientSig) {
		return false
	}
	if !crypto.VerifySignature(offer.Intermediary.PubKey, offerHash, tx.IntermediarySig) {
		return false
	}
	return crypto.VerifySignature(offer.Sender, tx.SigHash(), tx.SenderSig)
}

func (tx *ExchangeIntermediaryTx) String() string {
	return fmt.Sprintf("{Type: %s, Sender: %s, Recipient: %s, Intermediary: %s, Value: %d, Strategy: %s, Seed: %d}",
		tx.Type(), tx.Offer.Sender, tx.Offer.Recipient, tx.Offer.Intermediary.PubKey, tx.Offer.SenderValue, tx.Offer.FeeStrategy, tx.Seed)
}
