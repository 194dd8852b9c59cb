package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

func genKey(t *testing.T) (common.PublicKey, *crypto.PrivateKey) {
	t.Helper()
	pub, priv, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)
	return pub, priv
}

func TestCreateWalletTx(t *testing.T) {
	pub, priv := genKey(t)

	tx := NewCreateWalletTx(pub, 1)
	assert.False(t, tx.Verify())
	assert.NoError(t, tx.Sign(priv))
	assert.True(t, tx.Verify())
	assert.Equal(t, TxCreateWallet, tx.Type())

	// identity hash covers the signature, signing digest does not
	assert.NotEqual(t, tx.SigHash(), tx.Hash())

	// a different seed yields a different identity
	tx2 := NewCreateWalletTx(pub, 2)
	assert.NoError(t, tx2.Sign(priv))
	assert.NotEqual(t, tx.Hash(), tx2.Hash())
}

func TestMiningTx(t *testing.T) {
	pub, priv := genKey(t)
	other, _ := genKey(t)

	tx := NewMiningTx(pub, 9)
	assert.NoError(t, tx.Sign(priv))
	assert.True(t, tx.Verify())

	tx.PubKey = other
	assert.False(t, tx.Verify())
}

func TestAddAssetsTx(t *testing.T) {
	pub, priv := genKey(t)
	receiver, _ := genKey(t)

	meta := []MetaAsset{{Data: "token.gold", Amount: 5, Fees: AssetFees{Fixed: 1}, Receiver: receiver}}
	tx := NewAddAssetsTx(pub, meta, 1)
	assert.NoError(t, tx.Sign(priv))
	assert.True(t, tx.Verify())

	empty := NewAddAssetsTx(pub, nil, 1)
	assert.NoError(t, empty.Sign(priv))
	assert.False(t, empty.Verify())

	zero := NewAddAssetsTx(pub, []MetaAsset{{Data: "token.gold", Receiver: receiver}}, 1)
	assert.NoError(t, zero.Sign(priv))
	assert.False(t, zero.Verify())
}

func TestDelAssetsTx(t *testing.T) {
	pub, priv := genKey(t)

	tx := NewDelAssetsTx(pub, []AssetBundle{NewAssetBundle("token.gold", 3, pub)}, 1)
	assert.NoError(t, tx.Sign(priv))
	assert.True(t, tx.Verify())

	zero := NewDelAssetsTx(pub, []AssetBundle{NewAssetBundle("token.gold", 0, pub)}, 1)
	assert.NoError(t, zero.Sign(priv))
	assert.False(t, zero.Verify())
}

func TestTransferTx(t *testing.T) {
	from, fromPriv := genKey(t)
	to, _ := genKey(t)

	tx := NewTransferTx(from, to, 100, []AssetBundle{NewAssetBundle("token.gold", 2, from)}, "note", 1)
	assert.NoError(t, tx.Sign(fromPriv))
	assert.True(t, tx.Verify())

	// tampering after signing breaks verification
	tx.Amount = 101
	assert.False(t, tx.Verify())
	tx.Amount = 100
	assert.True(t, tx.Verify())

	self := NewTransferTx(from, from, 100, nil, "", 1)
	assert.NoError(t, self.Sign(fromPriv))
	assert.False(t, self.Verify())
}

func TestExchangeTx(t *testing.T) {
	sender, senderPriv := genKey(t)
	recipient, recipientPriv := genKey(t)

	offer := ExchangeOffer{
		Sender:          sender,
		SenderAssets:    []AssetBundle{NewAssetBundle("token.gold", 2, sender)},
		SenderValue:     10,
		Recipient:       recipient,
		RecipientAssets: []AssetBundle{NewAssetBundle("token.silver", 3, recipient)},
		FeeStrategy:     FeeStrategyRecipient,
	}
	tx := NewExchangeTx(offer, 1, "swap")
	assert.NoError(t, tx.CoSign(recipientPriv))
	assert.NoError(t, tx.Sign(senderPriv))
	assert.True(t, tx.Verify())

	// the recipient's signature binds the offer contents
	tx.Offer.SenderValue = 11
	assert.False(t, tx.Verify())
	tx.Offer.SenderValue = 10
	assert.True(t, tx.Verify())

	// the sender's signature binds the counter signature
	stolen := *tx
	assert.NoError(t, stolen.CoSign(senderPriv))
	assert.False(t, stolen.Verify())
}

func TestExchangeTx_StrategyBounds(t *testing.T) {
	sender, senderPriv := genKey(t)
	recipient, recipientPriv := genKey(t)

	offer := ExchangeOffer{Sender: sender, SenderValue: 10, Recipient: recipient, FeeStrategy: FeeStrategyIntermediary}
	tx := NewExchangeTx(offer, 1, "")
	assert.NoError(t, tx.CoSign(recipientPriv))
	assert.NoError(t, tx.Sign(senderPriv))
	assert.False(t, tx.Verify())

	tx.Offer.FeeStrategy = FeeStrategySender
	assert.NoError(t, tx.CoSign(recipientPriv))
	assert.NoError(t, tx.Sign(senderPriv))
	assert.True(t, tx.Verify())
}

func TestExchangeIntermediaryTx(t *testing.T) {
	sender, senderPriv := genKey(t)
	recipient, recipientPriv := genKey(t)
	broker, brokerPriv := genKey(t)

	offer := ExchangeOfferIntermediary{
		Intermediary: Intermediary{PubKey: broker, Commission: 5},
		Sender:       sender,
		SenderValue:  10,
		Recipient:    recipient,
		RecipientAssets: []AssetBundle{
			NewAssetBundle("token.silver", 3, recipient),
		},
		FeeStrategy: FeeStrategyIntermediary,
	}
	tx := NewExchangeIntermediaryTx(offer, 1, "")
	assert.NoError(t, tx.CoSign(recipientPriv))
	assert.NoError(t, tx.SignIntermediary(brokerPriv))
	assert.NoError(t, tx.Sign(senderPriv))
	assert.True(t, tx.Verify())

	// the broker cannot be a transacting party
	tx.Offer.Intermediary.PubKey = sender
	assert.False(t, tx.Verify())
	tx.Offer.Intermediary.PubKey = broker
	assert.True(t, tx.Verify())

	// raising the commission invalidates everyone's signature
	tx.Offer.Intermediary.Commission = 50
	assert.False(t, tx.Verify())
}

func TestTradeTx(t *testing.T) {
	seller, sellerPriv := genKey(t)
	buyer, buyerPriv := genKey(t)

	offer := TradeOffer{
		Seller:      seller,
		Buyer:       buyer,
		Assets:      []AssetBundle{NewAssetBundle("token.gold", 4, seller)},
		Price:       40,
		FeeStrategy: FeeStrategySenderAndRecipient,
	}
	tx := NewTradeTx(offer, 1, "")
	assert.NoError(t, tx.CoSign(buyerPriv))
	assert.NoError(t, tx.Sign(sellerPriv))
	assert.True(t, tx.Verify())

	tx.Offer.Price = 41
	assert.False(t, tx.Verify())
	tx.Offer.Price = 40
	assert.True(t, tx.Verify())

	// a trade without assets is meaningless
	empty := NewTradeTx(TradeOffer{Seller: seller, Buyer: buyer, Price: 40, FeeStrategy: FeeStrategySender}, 1, "")
	assert.NoError(t, empty.CoSign(buyerPriv))
	assert.NoError(t, empty.Sign(sellerPriv))
	assert.False(t, empty.Verify())
}

func TestTradeIntermediaryTx(t *testing.T) {
	seller, sellerPriv := genKey(t)
	buyer, buyerPriv := genKey(t)
	broker, brokerPriv := genKey(t)

	offer := TradeOfferIntermediary{
		Intermediary: Intermediary{PubKey: broker, Commission: 2},
		Seller:       seller,
		Buyer:        buyer,
		Assets:       []AssetBundle{NewAssetBundle("token.gold", 4, seller)},
		Price:        40,
		FeeStrategy:  FeeStrategyIntermediary,
	}
	tx := NewTradeIntermediaryTx(offer, 1, "")
	assert.NoError(t, tx.CoSign(buyerPriv))
	assert.NoError(t, tx.SignIntermediary(brokerPriv))
	assert.NoError(t, tx.Sign(sellerPriv))
	assert.True(t, tx.Verify())

	tx.Offer.Assets[0].Amount = 5
	assert.False(t, tx.Verify())
	tx.Offer.Assets[0].Amount = 4
	assert.True(t, tx.Verify())
}

func TestTxHashDistinctAcrossTypes(t *testing.T) {
	pub, priv := genKey(t)

	create := NewCreateWalletTx(pub, 1)
	assert.NoError(t, create.Sign(priv))
	mining := NewMiningTx(pub, 1)
	assert.NoError(t, mining.Sign(priv))

	// identical fields under different type tags never collide
	assert.NotEqual(t, create.Hash(), mining.Hash())
}

func TestFeeStrategyValid(t *testing.T) {
	assert.True(t, FeeStrategySender.Valid())
	assert.True(t, FeeStrategyIntermediary.Valid())
	assert.False(t, FeeStrategy(0).Valid())
	assert.False(t, FeeStrategy(5).Valid())
}
