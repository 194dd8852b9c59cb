package txprocessor

import (
	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
)

// applyTransfer moves coins and bundles from sender to recipient. The
// sender bears the flat fee and every creator tax; the principal only
// proceeds once both fee phases went through.
func (p *TxProcessor) applyTransfer(m *account.Manager, tx *types.TransferTx) error {
	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, types.FeeStrategySender, tx.From, tx.To, tx.From); err != nil {
		return err
	}

	if err := m.MoveCoins(tx.From, tx.To, tx.Amount); err != nil {
		return err
	}
	return m.MoveAssets(tx.From, tx.To, tx.Assets)
}
