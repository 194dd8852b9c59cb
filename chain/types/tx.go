package types

import (
	"encoding/binary"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

// TxType tags every transaction kind on the wire and in the fee table.
type TxType uint8

const (
	TxCreateWallet TxType = iota + 1
	TxAddAssets
	TxDelAssets
	TxTransfer
	TxExchange
	TxExchangeIntermediary
	TxTrade
	TxTradeIntermediary
	TxMining
)

func (t TxType) String() string {
	switch t {
	case TxCreateWallet:
		return "CreateWallet"
	case TxAddAssets:
		return "AddAssets"
	case TxDelAssets:
		return "DelAssets"
	case TxTransfer:
		return "Transfer"
	case TxExchange:
		return "Exchange"
	case TxExchangeIntermediary:
		return "ExchangeIntermediary"
	case TxTrade:
		return "Trade"
	case TxTradeIntermediary:
		return "TradeIntermediary"
	case TxMining:
		return "Mining"
	default:
		return "Unknown"
	}
}

// FeeStrategy selects which transacting party bears the network fee.
type FeeStrategy uint8

const (
	FeeStrategySender FeeStrategy = iota + 1
	FeeStrategyRecipient
	FeeStrategySenderAndRecipient
	FeeStrategyIntermediary
)

// Valid reports whether the value is inside the enumeration. An
// out-of-range strategy is a verification failure, never an execution one.
func (s FeeStrategy) Valid() bool {
	return s >= FeeStrategySender && s <= FeeStrategyIntermediary
}

func (s FeeStrategy) String() string {
	switch s {
	case FeeStrategySender:
		return "Sender"
	case FeeStrategyRecipient:
		return "Recipient"
	case FeeStrategySenderAndRecipient:
		return "SenderAndRecipient"
	case FeeStrategyIntermediary:
		return "Intermediary"
	default:
		return "Unknown"
	}
}

// Transaction is the contract every transaction kind exposes to the
// consensus host: a stable hash for status keying, and a stateless
// verification of its own signed fields. Execution lives in txprocessor.
type Transaction interface {
	Type() TxType
	Hash() common.Hash
	Verify() bool
}

// canonicalWriter appends fields in a fixed order with little-endian
// integers and length-prefixed variable parts. Hashing and signing operate
// over these bytes, so the layout is part of the network protocol and must
// never change silently.
type canonicalWriter struct {
	buf []byte
}

func newCanonicalWriter(txType TxType) *canonicalWriter {
	return &canonicalWriter{buf: []byte{byte(txType)}}
}

func (w *canonicalWriter) uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *canonicalWriter) uint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *canonicalWriter) pubKey(k common.PublicKey) {
	w.buf = append(w.buf, k.Bytes()...)
}

func (w *canonicalWriter) bytes(b []byte) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(b)))
	w.buf = append(w.buf, l[:]...)
	w.buf = append(w.buf, b...)
}

func (w *canonicalWriter) str(s string) {
	w.bytes([]byte(s))
}

func (w *canonicalWriter) bundles(bs []AssetBundle) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(bs)))
	w.buf = append(w.buf, l[:]...)
	for _, b := range bs {
		w.buf = append(w.buf, b.ID[:]...)
		w.uint64(b.Amount)
	}
}

func (w *canonicalWriter) metaAssets(ms []MetaAsset) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(ms)))
	w.buf = append(w.buf, l[:]...)
	for _, m := range ms {
		w.str(m.Data)
		w.uint64(m.Amount)
		w.uint64(m.Fees.Fixed)
		w.uint64(m.Fees.Tax)
		w.pubKey(m.Receiver)
	}
}

func (w *canonicalWriter) hash() common.Hash {
	return crypto.Keccak256Hash(w.buf)
}
