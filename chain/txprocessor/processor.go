// Package txprocessor drives the ledger state machine: stateless
// verification of signed transactions and their stateful execution against
// a store fork. Execution is strictly two-phase — every mutation is staged
// in an account manager and flushed only when the whole handler succeeded,
// so a failing transaction leaves nothing behind but its status record.
package txprocessor

import (
	"errors"
	"fmt"

	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/params"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common/log"
	"github.com/EvoNetworkLtd/evochain-core/metrics"
	"github.com/EvoNetworkLtd/evochain-core/store"
)

var (
	verifyCounter      = metrics.NewCounter("tx/verify")
	verifyFailCounter  = metrics.NewCounter("tx/verify/fail")
	executeCounter     = metrics.NewCounter("tx/execute")
	executeFailCounter = metrics.NewCounter("tx/execute/fail")
)

// TxProcessor executes transactions against ledger forks under one
// immutable configuration snapshot. Safe to reuse across transactions; the
// host calls it synchronously in block order.
type TxProcessor struct {
	cfg *params.Config
}

func NewTxProcessor(cfg *params.Config) *TxProcessor {
	return &TxProcessor{cfg: cfg}
}

// Verify checks the transaction's own signed fields. It reads no ledger
// state, so the host may call it before inclusion, on any goroutine.
func (p *TxProcessor) Verify(tx types.Transaction) bool {
	verifyCounter.Inc(1)
	if !tx.Verify() {
		verifyFailCounter.Inc(1)
		log.Debug("tx verify failed", "type", tx.Type(), "hash", tx.Hash().TerminalString())
		return false
	}
	return true
}

// Execute applies the transaction to the fork and records its outcome
// under the transaction hash. A ledger-level failure is not an error: the
// returned status carries it, the fork holds only the status record. A
// non-nil error means no verdict was reached, because the store failed
// or the transaction could not be dispatched at all; the host must
// discard the fork and nothing is recorded.
func (p *TxProcessor) Execute(tx types.Transaction, fork store.Fork) (types.TxStatus, error) {
	executeCounter.Inc(1)

	m := account.NewManager(fork)
	err := p.apply(m, tx)
	if err == nil {
		if serr := m.Save(); serr != nil {
			return types.TxStatus{}, fmt.Errorf("save transaction effects: %w", serr)
		}
	} else if !errors.As(err, new(types.ExecError)) {
		// store faults are not verdicts. Only ledger rules may fail a tx.
		return types.TxStatus{}, fmt.Errorf("execute %s: %w", tx.Type(), err)
	}

	status := types.NewTxStatus(err)
	if !status.Success {
		executeFailCounter.Inc(1)
		log.Debug("tx rejected", "type", tx.Type(), "hash", tx.Hash().TerminalString(), "err", err)
	}
	if werr := account.WriteStatus(fork, tx.Hash(), status); werr != nil {
		return types.TxStatus{}, fmt.Errorf("write status record: %w", werr)
	}
	return status, nil
}

func (p *TxProcessor) apply(m *account.Manager, tx types.Transaction) error {
	switch t := tx.(type) {
	case *types.CreateWalletTx:
		return p.applyCreateWallet(m, t)
	case *types.MiningTx:
		return p.applyMining(m, t)
	case *types.AddAssetsTx:
		return p.applyAddAssets(m, t)
	case *types.DelAssetsTx:
		return p.applyDelAssets(m, t)
	case *types.TransferTx:
		return p.applyTransfer(m, t)
	case *types.ExchangeTx:
		return p.applyExchange(m, t)
	case *types.ExchangeIntermediaryTx:
		return p.applyExchangeIntermediary(m, t)
	case *types.TradeTx:
		return p.applyTrade(m, t)
	case *types.TradeIntermediaryTx:
		return p.applyTradeIntermediary(m, t)
	default:
		return types.ErrUnknownTxType
	}
}
