package txprocessor

import (
	"bytes"
	"math"
	"sort"

	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/params"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/store"
)

// Fees is the computed fee obligation of one transaction: the flat network
// fee owed to the treasury plus the per-creator asset taxes over every
// bundle it moves. Computing it mutates nothing.
type Fees struct {
	Transaction uint64                      `json:"transaction"`
	ThirdParty  map[common.PublicKey]uint64 `json:"thirdParty,omitempty"`
}

// Total is the combined obligation across both components.
func (f *Fees) Total() uint64 {
	total := f.Transaction
	for _, amount := range f.ThirdParty {
		total += amount
	}
	return total
}

// creditors returns the third-party creditor keys in a stable order.
func (f *Fees) creditors() []common.PublicKey {
	keys := make([]common.PublicKey, 0, len(f.ThirdParty))
	for key := range f.ThirdParty {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys
}

// addTaxes folds the creator taxes for bundles into f, reading fee
// schedules from the registry. An unregistered asset fails the whole
// computation.
func (f *Fees) addTaxes(m *account.Manager, bundles []types.AssetBundle) error {
	for _, b := range bundles {
		info, err := m.GetAssetInfo(b.ID)
		if err == store.ErrNotExist {
			return types.ExecAssetNotFound
		}
		if err != nil {
			return err
		}
		tax := info.Fees.ForAmount(b.Amount)
		if tax == 0 {
			continue
		}
		if f.ThirdParty == nil {
			f.ThirdParty = make(map[common.PublicKey]uint64)
		}
		if owed := f.ThirdParty[info.Creator]; owed > math.MaxUint64-tax {
			f.ThirdParty[info.Creator] = math.MaxUint64
		} else {
			f.ThirdParty[info.Creator] = owed + tax
		}
	}
	return nil
}

func computeFees(m *account.Manager, cfg *params.Config, tx types.Transaction) (*Fees, error) {
	fees := &Fees{}
	switch t := tx.(type) {
	case *types.CreateWalletTx:
		fees.Transaction = cfg.Fees.CreateWallet
	case *types.MiningTx:
		// emission carries no fee
	case *types.AddAssetsTx:
		fees.Transaction = cfg.Fees.AddAssets + cfg.Fees.PerAsset*uint64(len(t.Assets))
	case *types.DelAssetsTx:
		fees.Transaction = cfg.Fees.DelAssets
	case *types.TransferTx:
		fees.Transaction = cfg.Fees.Transfer
		if err := fees.addTaxes(m, t.Assets); err != nil {
			return nil, err
		}
	case *types.ExchangeTx:
		fees.Transaction = cfg.Fees.Exchange
		if err := fees.addTaxes(m, t.Offer.SenderAssets); err != nil {
			return nil, err
		}
		if err := fees.addTaxes(m, t.Offer.RecipientAssets); err != nil {
			return nil, err
		}
	case *types.ExchangeIntermediaryTx:
		fees.Transaction = cfg.Fees.ExchangeIntermediary
		if err := fees.addTaxes(m, t.Offer.SenderAssets); err != nil {
			return nil, err
		}
		if err := fees.addTaxes(m, t.Offer.RecipientAssets); err != nil {
			return nil, err
		}
	case *types.TradeTx:
		fees.Transaction = cfg.Fees.Trade
		if err := fees.addTaxes(m, t.Offer.Assets); err != nil {
			return nil, err
		}
	case *types.TradeIntermediaryTx:
		fees.Transaction = cfg.Fees.TradeIntermediary
		if err := fees.addTaxes(m, t.Offer.Assets); err != nil {
			return nil, err
		}
	default:
		return nil, types.ErrUnknownTxType
	}
	return fees, nil
}

// FeesFor computes the fee obligation a transaction would incur against the
// current registry state, without touching it. Intended for query surfaces
// that let a client price a transaction before submitting it.
func FeesFor(tx types.Transaction, fork store.Fork, cfg *params.Config) (*Fees, error) {
	return computeFees(account.NewManager(fork), cfg, tx)
}

// feeShare is one payer's portion of a single fee amount.
type feeShare struct {
	payer  common.PublicKey
	amount uint64
}

// feeShares splits fee across the parties the strategy designates. Under
// the split strategy the fee halves between both parties, the sender
// covering the remainder of an odd amount.
func feeShares(strategy types.FeeStrategy, sender, recipient, intermediary common.PublicKey, fee uint64) []feeShare {
	switch strategy {
	case types.FeeStrategyRecipient:
		return []feeShare{{recipient, fee}}
	case types.FeeStrategySenderAndRecipient:
		half := fee / 2
		return []feeShare{{recipient, half}, {sender, fee - half}}
	case types.FeeStrategyIntermediary:
		return []feeShare{{intermediary, fee}}
	default:
		return []feeShare{{sender, fee}}
	}
}

// collect moves every share to the creditor inside the staged layer. A
// share whose payer is the creditor itself is waived, so an asset creator
// never taxes its own movements and the treasury never pays itself.
func collect(m *account.Manager, shares []feeShare, creditor common.PublicKey) error {
	for _, s := range shares {
		if s.payer == creditor || s.amount == 0 {
			continue
		}
		if err := m.MoveCoins(s.payer, creditor, s.amount); err != nil {
			return err
		}
	}
	return nil
}

// collectFees applies the fixed collection order: the flat network fee to
// the treasury first, then each creator's tax, every payment split per the
// strategy. The staged layer keeps a failure at any step from leaving a
// partial collection behind.
func collectFees(m *account.Manager, cfg *params.Config, fees *Fees, strategy types.FeeStrategy, sender, recipient, intermediary common.PublicKey) error {
	if err := collect(m, feeShares(strategy, sender, recipient, intermediary, fees.Transaction), cfg.Treasury); err != nil {
		return err
	}
	for _, creator := range fees.creditors() {
		shares := feeShares(strategy, sender, recipient, intermediary, fees.ThirdParty[creator])
		if err := collect(m, shares, creator); err != nil {
			return err
		}
	}
	return nil
}
