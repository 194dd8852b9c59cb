package txprocessor

import (
	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common"
)

// applyExchange swaps coin value and bundles between the two parties.
// Fees and taxes are attributed per the offer's strategy, then value and
// both asset directions move in the same staged step.
func (p *TxProcessor) applyExchange(m *account.Manager, tx *types.ExchangeTx) error {
	offer := &tx.Offer
	if offer.FeeStrategy == types.FeeStrategyIntermediary {
		return types.ExecInvalidTransaction
	}

	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, offer.FeeStrategy, offer.Sender, offer.Recipient, common.PublicKey{}); err != nil {
		return err
	}

	return p.settleExchange(m, offer.Sender, offer.Recipient, offer.SenderValue, offer.SenderAssets, offer.RecipientAssets)
}

// applyExchangeIntermediary is the brokered swap: the intermediary may
// bear the fees and is paid its commission by the offer's sender before
// the principal settles.
func (p *TxProcessor) applyExchangeIntermediary(m *account.Manager, tx *types.ExchangeIntermediaryTx) error {
	offer := &tx.Offer

	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, offer.FeeStrategy, offer.Sender, offer.Recipient, offer.Intermediary.PubKey); err != nil {
		return err
	}
	if err := m.MoveCoins(offer.Sender, offer.Intermediary.PubKey, offer.Intermediary.Commission); err != nil {
		return err
	}

	return p.settleExchange(m, offer.Sender, offer.Recipient, offer.SenderValue, offer.SenderAssets, offer.RecipientAssets)
}

func (p *TxProcessor) settleExchange(m *account.Manager, sender, recipient common.PublicKey, value uint64, senderAssets, recipientAssets []types.AssetBundle) error {
	if err := m.MoveCoins(sender, recipient, value); err != nil {
		return err
	}
	if err := m.MoveAssets(sender, recipient, senderAssets); err != nil {
		return err
	}
	return m.MoveAssets(recipient, sender, recipientAssets)
}
