package types

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Wallet is the account state stored per public key: a currency balance and
// the owned asset bundles. Holdings are kept sorted by asset id and a zero
// holding is removed, never stored.
type Wallet struct {
	Balance uint64        `json:"balance"`
	Assets  []AssetBundle `json:"assets,omitempty"`
}

func NewWallet(balance uint64) *Wallet {
	return &Wallet{Balance: balance}
}

func (w *Wallet) Clone() *Wallet {
	cpy := &Wallet{Balance: w.Balance}
	if len(w.Assets) > 0 {
		cpy.Assets = make([]AssetBundle, len(w.Assets))
		copy(cpy.Assets, w.Assets)
	}
	return cpy
}

// Asset returns the held amount of the given asset.
func (w *Wallet) Asset(id AssetID) (uint64, bool) {
	i := w.search(id)
	if i < len(w.Assets) && w.Assets[i].ID == id {
		return w.Assets[i].Amount, true
	}
	return 0, false
}

func (w *Wallet) search(id AssetID) int {
	return sort.Search(len(w.Assets), func(i int) bool {
		return bytes.Compare(w.Assets[i].ID[:], id[:]) >= 0
	})
}

// setAsset updates the holding of id, inserting in sorted position and
// dropping the entry when the amount reaches zero.
func (w *Wallet) setAsset(id AssetID, amount uint64) {
	i := w.search(id)
	exists := i < len(w.Assets) && w.Assets[i].ID == id
	switch {
	case amount == 0 && exists:
		w.Assets = append(w.Assets[:i], w.Assets[i+1:]...)
	case amount == 0:
		// nothing held, nothing stored
	case exists:
		w.Assets[i].Amount = amount
	default:
		w.Assets = append(w.Assets, AssetBundle{})
		copy(w.Assets[i+1:], w.Assets[i:])
		w.Assets[i] = AssetBundle{ID: id, Amount: amount}
	}
}

// AddAsset credits amount of id, creating the holding if absent. The
// holding is untouched when the credit would wrap.
func (w *Wallet) AddAsset(id AssetID, amount uint64) error {
	cur, _ := w.Asset(id)
	if cur > math.MaxUint64-amount {
		return ExecInvalidTransaction
	}
	w.setAsset(id, cur+amount)
	return nil
}

// SubAsset debits amount of id. An unknown asset and an overdraw are
// distinct failures; the wallet is untouched on either.
func (w *Wallet) SubAsset(id AssetID, amount uint64) error {
	held, ok := w.Asset(id)
	if !ok {
		return ExecAssetNotFound
	}
	if held < amount {
		return ExecInsufficientAssets
	}
	w.setAsset(id, held-amount)
	return nil
}

func (w *Wallet) String() string {
	assets := make([]string, 0, len(w.Assets))
	for _, b := range w.Assets {
		assets = append(assets, b.String())
	}
	return fmt.Sprintf("{Balance: %d, Assets: [%s]}", w.Balance, strings.Join(assets, ", "))
}

// MoveCoins moves amount from one wallet to the other, in memory only.
// Callers are responsible for writing the mutated copies back to the store,
// which lets a multi-step transaction compose several moves before any
// write becomes visible. A zero amount always succeeds. Both wallets are
// untouched on failure.
func MoveCoins(from, to *Wallet, amount uint64) error {
	if from.Balance < amount {
		return ExecInsufficientFunds
	}
	if from != to && to.Balance > math.MaxUint64-amount {
		return ExecInvalidTransaction
	}
	from.Balance -= amount
	to.Balance += amount
	return nil
}

// MoveAssets moves every bundle from one wallet to the other, in memory
// only. The bundles are processed as a set: if any of them exceeds the
// sender's holding, no transfer is applied at all.
func MoveAssets(from, to *Wallet, bundles []AssetBundle) error {
	if len(bundles) == 0 {
		return nil
	}
	cf := from.Clone()
	ct := to.Clone()
	if from == to {
		ct = cf
	}
	for _, b := range bundles {
		if b.Amount == 0 {
			continue
		}
		held, ok := cf.Asset(b.ID)
		if !ok || held < b.Amount {
			return ExecInsufficientAssets
		}
		cf.setAsset(b.ID, held-b.Amount)
		cur, _ := ct.Asset(b.ID)
		if cur > math.MaxUint64-b.Amount {
			return ExecInvalidTransaction
		}
		ct.setAsset(b.ID, cur+b.Amount)
	}
	*from = *cf
	if to != from {
		*to = *ct
	}
	return nil
}
