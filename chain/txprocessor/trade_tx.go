package txprocessor

import (
	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common"
)

// applyTrade sells the offer's bundles for the buyer's coins. The seller
// takes the sender role of the fee strategy, the buyer the recipient role.
func (p *TxProcessor) applyTrade(m *account.Manager, tx *types.TradeTx) error {
	offer := &tx.Offer
	if offer.FeeStrategy == types.FeeStrategyIntermediary {
		return types.ExecInvalidTransaction
	}

	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, offer.FeeStrategy, offer.Seller, offer.Buyer, common.PublicKey{}); err != nil {
		return err
	}

	return p.settleTrade(m, offer.Seller, offer.Buyer, offer.Price, offer.Assets)
}

// applyTradeIntermediary is the brokered sale: the intermediary may bear
// the fees and is paid its commission by the seller.
func (p *TxProcessor) applyTradeIntermediary(m *account.Manager, tx *types.TradeIntermediaryTx) error {
	offer := &tx.Offer

	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, offer.FeeStrategy, offer.Seller, offer.Buyer, offer.Intermediary.PubKey); err != nil {
		return err
	}
	if err := m.MoveCoins(offer.Seller, offer.Intermediary.PubKey, offer.Intermediary.Commission); err != nil {
		return err
	}

	return p.settleTrade(m, offer.Seller, offer.Buyer, offer.Price, offer.Assets)
}

func (p *TxProcessor) settleTrade(m *account.Manager, seller, buyer common.PublicKey, price uint64, assets []types.AssetBundle) error {
	if err := m.MoveCoins(buyer, seller, price); err != nil {
		return err
	}
	return m.MoveAssets(seller, buyer, assets)
}
