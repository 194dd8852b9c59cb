package txprocessor

import (
	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/store"
)

// applyAddAssets issues the batch of asset intents: the flat fee plus the
// per-asset surcharge goes to the treasury first, then every intent merges
// into the registry and credits its receiver. The staged layer makes the
// batch all-or-nothing, so a merge conflict on the last intent undoes the
// credits of the first ones.
func (p *TxProcessor) applyAddAssets(m *account.Manager, tx *types.AddAssetsTx) error {
	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, types.FeeStrategySender, tx.PubKey, tx.PubKey, tx.PubKey); err != nil {
		return err
	}

	for i := range tx.Assets {
		meta := &tx.Assets[i]
		id := meta.ID(tx.PubKey)

		info, err := m.GetAssetInfo(id)
		switch {
		case err == store.ErrNotExist:
			m.SetAssetInfo(id, meta.ToInfo(tx.PubKey))
		case err != nil:
			return err
		default:
			if err := info.Merge(meta.ToInfo(tx.PubKey)); err != nil {
				return err
			}
			m.SetAssetInfo(id, info)
		}

		receiver, err := m.GetWallet(meta.Receiver)
		if err != nil {
			return err
		}
		if err := receiver.AddAsset(id, meta.Amount); err != nil {
			return err
		}
	}
	return nil
}

// applyDelAssets retires asset amounts from the signer's wallet and from
// circulation, deleting a registry entry whose circulating amount reaches
// zero.
func (p *TxProcessor) applyDelAssets(m *account.Manager, tx *types.DelAssetsTx) error {
	fees, err := computeFees(m, p.cfg, tx)
	if err != nil {
		return err
	}
	if err := collectFees(m, p.cfg, fees, types.FeeStrategySender, tx.PubKey, tx.PubKey, tx.PubKey); err != nil {
		return err
	}

	w, err := m.GetWallet(tx.PubKey)
	if err != nil {
		return err
	}
	for _, b := range tx.Assets {
		if err := w.SubAsset(b.ID, b.Amount); err != nil {
			return err
		}

		info, err := m.GetAssetInfo(b.ID)
		if err == store.ErrNotExist {
			return types.ExecAssetNotFound
		}
		if err != nil {
			return err
		}
		if info.Amount < b.Amount {
			return types.ExecInsufficientAssets
		}
		info.Amount -= b.Amount
		if info.Amount == 0 {
			m.DelAssetInfo(b.ID)
		} else {
			m.SetAssetInfo(b.ID, info)
		}
	}
	return nil
}
