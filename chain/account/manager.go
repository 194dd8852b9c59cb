// Package account stages ledger state mutations for one transaction. A
// Manager wraps a store fork and buffers every wallet and asset write in
// memory; nothing reaches the fork until Save. A handler that fails simply
// abandons the manager, leaving the fork untouched, which gives every
// transaction all-or-nothing semantics regardless of how many accounts it
// walked before the error.
package account

import (
	"encoding/json"

	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/log"
	"github.com/EvoNetworkLtd/evochain-core/store"
)

// Manager buffers wallet and asset registry mutations over a store fork.
// Reads consult the staged layer first, then the fork. Not safe for
// concurrent use; the processor drives one manager per transaction.
type Manager struct {
	fork store.Fork

	wallets map[common.PublicKey]*types.Wallet
	// nil entry marks a staged deletion
	assets map[types.AssetID]*types.AssetInfo
}

func NewManager(fork store.Fork) *Manager {
	return &Manager{
		fork:    fork,
		wallets: make(map[common.PublicKey]*types.Wallet),
		assets:  make(map[types.AssetID]*types.AssetInfo),
	}
}

// GetWallet returns a staged mutable wallet for key, loading it from the
// fork on first touch. A missing wallet materializes as an empty one, so
// any key can receive funds.
func (m *Manager) GetWallet(key common.PublicKey) (*types.Wallet, error) {
	if w, ok := m.wallets[key]; ok {
		return w, nil
	}
	w := types.NewWallet(0)
	data, err := m.fork.Get(store.WalletKey(key))
	switch {
	case err == store.ErrNotExist:
		// fresh wallet
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, w); err != nil {
			return nil, err
		}
	}
	m.wallets[key] = w
	return w, nil
}

// SetWallet replaces the staged wallet for key.
func (m *Manager) SetWallet(key common.PublicKey, w *types.Wallet) {
	m.wallets[key] = w
}

// HasWallet reports whether key already has a wallet, staged or stored.
func (m *Manager) HasWallet(key common.PublicKey) (bool, error) {
	if _, ok := m.wallets[key]; ok {
		return true, nil
	}
	_, err := m.fork.Get(store.WalletKey(key))
	if err == store.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetAssetInfo returns a staged mutable registry entry for id.
func (m *Manager) GetAssetInfo(id types.AssetID) (*types.AssetInfo, error) {
	if info, ok := m.assets[id]; ok {
		if info == nil {
			return nil, store.ErrNotExist
		}
		return info, nil
	}
	data, err := m.fork.Get(store.AssetKey(id))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		// tombstone left by a prior retirement
		return nil, store.ErrNotExist
	}
	info := new(types.AssetInfo)
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	m.assets[id] = info
	return info, nil
}

// SetAssetInfo stages a registry entry for id.
func (m *Manager) SetAssetInfo(id types.AssetID, info *types.AssetInfo) {
	m.assets[id] = info
}

// DelAssetInfo stages the removal of the registry entry for id.
func (m *Manager) DelAssetInfo(id types.AssetID) {
	m.assets[id] = nil
}

// MoveCoins debits from and credits to inside the staged layer. When both
// keys are equal the move degenerates to a balance check.
func (m *Manager) MoveCoins(from, to common.PublicKey, amount uint64) error {
	wf, err := m.GetWallet(from)
	if err != nil {
		return err
	}
	if from == to {
		if wf.Balance < amount {
			return types.ExecInsufficientFunds
		}
		return nil
	}
	wt, err := m.GetWallet(to)
	if err != nil {
		return err
	}
	return types.MoveCoins(wf, wt, amount)
}

// MoveAssets moves the bundle set between staged wallets as one unit.
func (m *Manager) MoveAssets(from, to common.PublicKey, bundles []types.AssetBundle) error {
	wf, err := m.GetWallet(from)
	if err != nil {
		return err
	}
	wt := wf
	if from != to {
		if wt, err = m.GetWallet(to); err != nil {
			return err
		}
	}
	return types.MoveAssets(wf, wt, bundles)
}

// Save flushes every staged wallet and asset entry into the fork. A staged
// asset deletion is written as an empty value under the deleted marker key
// semantics of the store: the entry is overwritten with a tombstone the
// reader treats as absent.
func (m *Manager) Save() error {
	for key, w := range m.wallets {
		data, err := json.Marshal(w)
		if err != nil {
			return err
		}
		if err := m.fork.Put(store.WalletKey(key), data); err != nil {
			return err
		}
	}
	for id, info := range m.assets {
		if info == nil {
			if err := m.fork.Put(store.AssetKey(id), nil); err != nil {
				return err
			}
			continue
		}
		data, err := json.Marshal(info)
		if err != nil {
			return err
		}
		if err := m.fork.Put(store.AssetKey(id), data); err != nil {
			return err
		}
	}
	log.Debugf("account manager saved %d wallets, %d assets", len(m.wallets), len(m.assets))
	return nil
}

// WriteStatus records the outcome of one transaction directly on the fork,
// bypassing the staged layer, so it lands whether or not Save runs.
func WriteStatus(fork store.Fork, txHash common.Hash, status types.TxStatus) error {
	data, err := json.Marshal(&status)
	if err != nil {
		return err
	}
	return fork.Put(store.StatusKey(txHash), data)
}

// GetTxStatus reads the recorded outcome of a transaction from the fork.
func GetTxStatus(fork store.Fork, txHash common.Hash) (types.TxStatus, error) {
	data, err := fork.Get(store.StatusKey(txHash))
	if err == store.ErrNotExist {
		return types.TxStatus{}, types.ErrStatusNotExist
	}
	if err != nil {
		return types.TxStatus{}, err
	}
	var status types.TxStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return types.TxStatus{}, err
	}
	return status, nil
}

// ReadWallet reads a wallet straight from the fork without staging it.
// Intended for introspection; execution paths go through GetWallet.
func ReadWallet(fork store.Fork, key common.PublicKey) (*types.Wallet, error) {
	data, err := fork.Get(store.WalletKey(key))
	if err != nil {
		return nil, err
	}
	w := new(types.Wallet)
	if err := json.Unmarshal(data, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ReadAssetInfo reads a registry entry straight from the fork.
func ReadAssetInfo(fork store.Fork, id types.AssetID) (*types.AssetInfo, error) {
	data, err := fork.Get(store.AssetKey(id))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, store.ErrNotExist
	}
	info := new(types.AssetInfo)
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Assets walks every live registry entry in identifier order, skipping
// tombstones.
func Assets(fork store.Fork, fn func(id types.AssetID, info *types.AssetInfo) bool) error {
	var inner error
	err := fork.Iterate(store.AssetPrefix(), func(key, value []byte) bool {
		var id types.AssetID
		if len(key) != 1+len(id) || len(value) == 0 {
			return true
		}
		copy(id[:], key[1:])
		info := new(types.AssetInfo)
		if inner = json.Unmarshal(value, info); inner != nil {
			return false
		}
		return fn(id, info)
	})
	if inner != nil {
		return inner
	}
	return err
}

// Wallets walks every stored wallet in key order.
func Wallets(fork store.Fork, fn func(key common.PublicKey, w *types.Wallet) bool) error {
	var inner error
	err := fork.Iterate(store.WalletPrefix(), func(key, value []byte) bool {
		var pub common.PublicKey
		if len(key) != 1+len(pub) {
			return true
		}
		copy(pub[:], key[1:])
		w := new(types.Wallet)
		if inner = json.Unmarshal(value, w); inner != nil {
			return false
		}
		return fn(pub, w)
	})
	if inner != nil {
		return inner
	}
	return err
}
