package types

import (
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// TradeOffer is the payload both parties of a sale commit to: the assets the
// seller hands over, the coin price the buyer pays, and who bears the
// network fee.
type TradeOffer struct {
	Seller      common.PublicKey `json:"seller"`
	Buyer       common.PublicKey `json:"buyer"`
	Assets      []AssetBundle    `json:"assets"`
	Price       uint64           `json:"price"`
	FeeStrategy FeeStrategy      `json:"feeStrategy"`
}

func (o *TradeOffer) write(w *canonicalWriter) {
	w.pubKey(o.Seller)
	w.pubKey(o.Buyer)
	w.bundles(o.Assets)
	w.uint64(o.Price)
	w.uint8(uint8(o.FeeStrategy))
}

// Hash is the digest the buyer commits to.
func (o *TradeOffer) Hash() common.Hash {
	w := newCanonicalWriter(TxTrade)
	o.write(w)
	return w.hash()
}

func (o *TradeOffer) verifyBundles() bool {
	if len(o.Assets) == 0 {
		return false
	}
	for _, b := range o.Assets {
		if b.Amount == 0 {
			return false
		}
	}
	return true
}

// TradeTx sells asset bundles for coin value. The seller signs the full
// transaction, the buyer counter-signs the offer payload.
type TradeTx struct {
	Offer     TradeOffer `json:"offer"`
	Seed      uint64     `json:"seed"`
	DataInfo  string     `json:"dataInfo,omitempty"`
	BuyerSig  []byte     `json:"buyerSig"`
	SellerSig []byte     `json:"sellerSig"`
}

func NewTradeTx(offer TradeOffer, seed uint64, dataInfo string) *TradeTx {
	return &TradeTx{Offer: offer, Seed: seed, DataInfo: dataInfo}
}

func (tx *TradeTx) Type() TxType { return TxTrade }

func (tx *TradeTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxTrade)
	tx.Offer.write(w)
	w.uint64(tx.Seed)
	w.str(tx.DataInfo)
	w.bytes(tx.BuyerSig)
	return w
}

func (tx *TradeTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *TradeTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.SellerSig)
	return w.hash()
}

// CoSign records the buyer's signature over the offer. Must happen before
// Sign.
func (tx *TradeTx) CoSign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.BuyerSig = sig
	return nil
}

// Sign records the seller's signature over the full transaction.
func (tx *TradeTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.SellerSig = sig
	return nil
}

func (tx *TradeTx) Verify() bool {
	offer := &tx.Offer
	if offer.Seller == offer.Buyer {
		return false
	}
	switch offer.FeeStrategy {
	case FeeStrategySender, FeeStrategyRecipient, FeeStrategySenderAndRecipient:
	default:
		return false
	}
	if !offer.verifyBundles() {
		return false
	}
	if !crypto.VerifySignature(offer.Buyer, offer.Hash(), tx.BuyerSig) {
		return false
	}
	return crypto.VerifySignature(offer.Seller, tx.SigHash(), tx.SellerSig)
}

func (tx *TradeTx) String() string {
	return fmt.Sprintf("{Type: %s, Seller: %s, Buyer: %s, Price: %d, Strategy: %s, Seed: %d}",
		tx.Type(), tx.Offer.Seller, tx.Offer.Buyer, tx.Offer.Price, tx.Offer.FeeStrategy, tx.Seed)
}

// TradeOfferIntermediary extends TradeOffer with a brokering party bound
// into the offer digest.
type TradeOfferIntermediary struct {
	Intermediary Intermediary     `json:"intermediary"`
	Seller       common.PublicKey `json:"seller"`
	Buyer        common.PublicKey `json:"buyer"`
	Assets       []AssetBundle    `json:"assets"`
	Price        uint64           `json:"price"`
	FeeStrategy  FeeStrategy      `json:"feeStrategy"`
}

func (o *TradeOfferIntermediary) write(w *canonicalWriter) {
	w.pubKey(o.Intermediary.PubKey)
	w.uint64(o.Intermediary.Commission)
	w.pubKey(o.Seller)
	w.pubKey(o.Buyer)
	w.bundles(o.Assets)
	w.uint64(o.Price)
	w.uint8(uint8(o.FeeStrategy))
}

func (o *TradeOfferIntermediary) Hash() common.Hash {
	w := newCanonicalWriter(TxTradeIntermediary)
	o.write(w)
	return w.hash()
}

func (o *TradeOfferIntermediary) verifyBundles() bool {
	if len(o.Assets) == 0 {
		return false
	}
	for _, b := range o.Assets {
		if b.Amount == 0 {
			return false
		}
	}
	return true
}

// TradeIntermediaryTx is the brokered variant of TradeTx. The intermediary
// may bear the fees under the Intermediary strategy and earns a commission
// from the seller.
type TradeIntermediaryTx struct {
	Offer           TradeOfferIntermediary `json:"offer"`
	Seed            uint64                 `json:"seed"`
	DataInfo        string                 `json:"dataInfo,omitempty"`
	BuyerSig        []byte                 `json:"buyerSig"`
	IntermediarySig []byte                 `json:"intermediarySig"`
	SellerSig       []byte                 `json:"sellerSig"`
}

func NewTradeIntermediaryTx(offer TradeOfferIntermediary, seed uint64, dataInfo string) *TradeIntermediaryTx {
	return &TradeIntermediaryTx{Offer: offer, Seed: seed, DataInfo: dataInfo}
}

func (tx *TradeIntermediaryTx) Type() TxType { return TxTradeIntermediary }

func (tx *TradeIntermediaryTx) sigWriter() *canonicalWriter {
	w := newCanonicalWriter(TxTradeIntermediary)
	tx.Offer.write(w)
	w.uint64(tx.Seed)
	w.str(tx.DataInfo)
	w.bytes(tx.BuyerSig)
	w.bytes(tx.IntermediarySig)
	return w
}

func (tx *TradeIntermediaryTx) SigHash() common.Hash {
	return tx.sigWriter().hash()
}

func (tx *TradeIntermediaryTx) Hash() common.Hash {
	w := tx.sigWriter()
	w.bytes(tx.SellerSig)
	return w.hash()
}

// CoSign records the buyer's signature over the offer.
func (tx *TradeIntermediaryTx) CoSign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.BuyerSig = sig
	return nil
}

// SignIntermediary records the intermediary's signature over the offer.
func (tx *TradeIntermediaryTx) SignIntermediary(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.Offer.Hash(), priv)
	if err != nil {
		return err
	}
	tx.IntermediarySig = sig
	return nil
}

// Sign records the seller's signature over the full transaction. Must
// happen after both co-signatures.
func (tx *TradeIntermediaryTx) Sign(priv *crypto.PrivateKey) error {
	sig, err := crypto.Sign(tx.SigHash(), priv)
	if err != nil {
		return err
	}
	tx.SellerSig = sig
	return nil
}

func (tx *TradeIntermediaryTx) Verify() bool {
	offer := &tx.Offer
	if offer.Seller == offer.Buyer {
		return false
	}
	if offer.Intermediary.PubKey == offer.Seller || offer.Intermediary.PubKey == offer.Buyer {
		return false
	}
	if !offer.FeeStrategy.Valid() {
		return false
	}
	if !offer.verifyBundles() {
		return false
	}
	offerHash := offer.Hash()
	if !crypto.VerifySignature(offer.Buyer, offerHash, tx.BuyerSig) {
		return false
	}
	if !crypto.VerifySignature(offer.Intermediary.PubKey, offerHash, tx.IntermediarySig) {
		return false
	}
	return crypto.VerifySignature(offer.Seller, tx.SigHash(), tx.SellerSig)
}

func (tx *TradeIntermediaryTx) String() string {
	return fmt.Sprintf("{Type: %s, Seller: %s, Buyer: %s, Intermediary: %s, Price: %d, Strategy: %s, Seed: %d}",
		tx.Type(), tx.Offer.Seller, tx.Offer.Buyer, tx.Offer.Intermediary.PubKey, tx.Offer.Price, tx.Offer.FeeStrategy, tx.Seed)
}
