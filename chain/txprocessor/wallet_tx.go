package txprocessor

import (
	"math"

	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
)

// applyCreateWallet seeds a wallet with the configured initial balance.
// On a key that already has a wallet the behavior is a policy switch:
// reseed resets the wallet to its initial state, otherwise the transaction
// is rejected.
func (p *TxProcessor) applyCreateWallet(m *account.Manager, tx *types.CreateWalletTx) error {
	if !p.cfg.WalletReseed {
		has, err := m.HasWallet(tx.PubKey)
		if err != nil {
			return err
		}
		if has {
			return types.ExecInvalidTransaction
		}
	}
	m.SetWallet(tx.PubKey, types.NewWallet(p.cfg.InitBalance))

	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	return collectFees(m, p.cfg, fees, types.FeeStrategySender, tx.PubKey, tx.PubKey, tx.PubKey)
}

// applyMining credits the configured emission reward to the signer.
func (p *TxProcessor) applyMining(m *account.Manager, tx *types.MiningTx) error {
	if p.cfg.RestrictsMiner() && tx.PubKey != p.cfg.MinerKey {
		return types.ExecInvalidTransaction
	}
	w, err := m.GetWallet(tx.PubKey)
	if err != nil {
		return err
	}
	if w.Balance > math.MaxUint64-p.cfg.MiningReward {
		return types.ExecInvalidTransaction
	}
	w.Balance += p.cfg.MiningReward
	return nil
}
