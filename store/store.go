// Package store defines the transactional key-value surface the ledger
// core runs against. The consensus host hands every execute call an
// exclusive Fork; the host alone decides whether the fork is committed
// into durable state or discarded.
package store

import (
	"errors"

	"github.com/EvoNetworkLtd/evochain-core/common"
)

var (
	ErrNotExist = errors.New("data not exist")
)

// Fork is an isolated, mutable view of the ledger store.
//
// Get returns ErrNotExist for missing keys. Iterate visits entries whose
// key starts with prefix in ascending key order, stopping early when fn
// returns false; the order is stable within a single fork view.
type Fork interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Iterate(prefix []byte, fn func(key, value []byte) bool) error
}

// Database produces forks over durable state.
type Database interface {
	Fork() Fork
	Close() error
}

// Key prefixes separate the three ledger tables inside one key space.
var (
	walletPrefix = []byte("w")
	assetPrefix  = []byte("a")
	statusPrefix = []byte("s")
)

func WalletKey(key common.PublicKey) []byte {
	return append(append([]byte{}, walletPrefix...), key.Bytes()...)
}

func AssetKey(id [16]byte) []byte {
	return append(append([]byte{}, assetPrefix...), id[:]...)
}

func StatusKey(txHash common.Hash) []byte {
	return append(append([]byte{}, statusPrefix...), txHash.Bytes()...)
}

func WalletPrefix() []byte { return walletPrefix }
func AssetPrefix() []byte  { return assetPrefix }
func StatusPrefix() []byte { return statusPrefix }
