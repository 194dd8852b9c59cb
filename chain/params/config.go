// Package params holds the network-wide ledger configuration. The host
// supplies a Config snapshot per block; the core never mutates it.
package params

import (
	"github.com/EvoNetworkLtd/evochain-core/common"
)

const (
	// InitBalance is the default seed balance of a freshly created wallet.
	InitBalance uint64 = 100

	// MiningReward is the default emission credited per mining transaction.
	MiningReward uint64 = 100
)

// Default flat network fees per transaction kind, paid to the treasury.
const (
	AddAssetsFee            uint64 = 1
	DelAssetsFee            uint64 = 1
	CreateWalletFee         uint64 = 0
	TransferFee             uint64 = 1
	ExchangeFee             uint64 = 1
	ExchangeIntermediaryFee uint64 = 1
	TradeFee                uint64 = 1
	TradeIntermediaryFee    uint64 = 1
	PerAssetFee             uint64 = 1
)

// FeeTable lists the flat per-transaction network fee for every transaction
// kind, plus the per-asset surcharge applied to issuance batches.
type FeeTable struct {
	AddAssets            uint64 `json:"addAssets" mapstructure:"add_assets"`
	DelAssets            uint64 `json:"delAssets" mapstructure:"del_assets"`
	CreateWallet         uint64 `json:"createWallet" mapstructure:"create_wallet"`
	Transfer             uint64 `json:"transfer" mapstructure:"transfer"`
	Exchange             uint64 `json:"exchange" mapstructure:"exchange"`
	ExchangeIntermediary uint64 `json:"exchangeIntermediary" mapstructure:"exchange_intermediary"`
	Trade                uint64 `json:"trade" mapstructure:"trade"`
	TradeIntermediary    uint64 `json:"tradeIntermediary" mapstructure:"trade_intermediary"`
	PerAsset             uint64 `json:"perAsset" mapstructure:"per_asset"`
}

// Config is the immutable ledger configuration snapshot for one block.
type Config struct {
	Fees         FeeTable         `json:"fees" mapstructure:"fees"`
	InitBalance  uint64           `json:"initBalance" mapstructure:"init_balance"`
	MiningReward uint64           `json:"miningReward" mapstructure:"mining_reward"`
	Treasury     common.PublicKey `json:"treasury" mapstructure:"treasury"`

	// WalletReseed controls CreateWallet on an existing key: true resets the
	// wallet to its initial state, false rejects the transaction.
	WalletReseed bool `json:"walletReseed" mapstructure:"wallet_reseed"`

	// MinerKey, when set, is the only key allowed to submit mining
	// transactions. The zero value disables the restriction.
	MinerKey common.PublicKey `json:"minerKey" mapstructure:"miner_key"`
}

// DefaultConfig returns a Config populated with the package defaults and an
// unset treasury key.
func DefaultConfig() *Config {
	return &Config{
		Fees: FeeTable{
			AddAssets:            AddAssetsFee,
			DelAssets:            DelAssetsFee,
			CreateWallet:         CreateWalletFee,
			Transfer:             TransferFee,
			Exchange:             ExchangeFee,
			ExchangeIntermediary: ExchangeIntermediaryFee,
			Trade:                TradeFee,
			TradeIntermediary:    TradeIntermediaryFee,
			PerAsset:             PerAssetFee,
		},
		InitBalance:  InitBalance,
		MiningReward: MiningReward,
		WalletReseed: true,
	}
}

// RestrictsMiner reports whether mining transactions are limited to a
// configured key.
func (c *Config) RestrictsMiner() bool {
	return c.MinerKey != (common.PublicKey{})
}
