package types

import (
	"errors"
)

var (
	ErrUnknownTxType  = errors.New("the 'type' field of transaction does not exist")
	ErrStatusNotExist = errors.New("status record does not exist")
)

// ExecError enumerates the recoverable ledger failures a transaction
// handler can report. Every kind aborts exactly one transaction and is
// persisted in its status record; none of them halts the ledger.
type ExecError uint8

const (
	ExecInsufficientFunds ExecError = iota + 1
	ExecInsufficientAssets
	ExecAssetNotFound
	ExecInvalidTransaction
	ExecInvalidAssetInfo
)

func (e ExecError) Error() string {
	switch e {
	case ExecInsufficientFunds:
		return "insufficient funds"
	case ExecInsufficientAssets:
		return "insufficient assets"
	case ExecAssetNotFound:
		return "asset not found"
	case ExecInvalidTransaction:
		return "invalid transaction"
	case ExecInvalidAssetInfo:
		return "asset info mismatch"
	default:
		return "unknown execution error"
	}
}

// TxStatus is the write-once outcome of one execute call, keyed by the
// transaction hash.
type TxStatus struct {
	Success bool      `json:"success"`
	Error   ExecError `json:"error,omitempty"`
}

// NewTxStatus builds the status record for a handler result.
func NewTxStatus(err error) TxStatus {
	if err == nil {
		return TxStatus{Success: true}
	}
	var kind ExecError
	if !errors.As(err, &kind) {
		kind = ExecInvalidTransaction
	}
	return TxStatus{Success: false, Error: kind}
}
