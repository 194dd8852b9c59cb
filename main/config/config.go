// Package config loads the network configuration file the tooling and any
// embedding host share. The file is optional: a missing file yields the
// package defaults, a malformed one is an error.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/EvoNetworkLtd/evochain-core/chain/params"
	"github.com/EvoNetworkLtd/evochain-core/common"
)

const FileName = "evochain"

// fileConfig mirrors params.Config with the key fields as base58 strings,
// the form they take in the file.
type fileConfig struct {
	Fees         params.FeeTable `mapstructure:"fees"`
	InitBalance  uint64          `mapstructure:"init_balance"`
	MiningReward uint64          `mapstructure:"mining_reward"`
	Treasury     string          `mapstructure:"treasury"`
	WalletReseed bool            `mapstructure:"wallet_reseed"`
	MinerKey     string          `mapstructure:"miner_key"`
}

// Load reads evochain.yaml from dir, falling back to defaults for every
// key the file omits. EVO_ prefixed environment variables override file
// values.
func Load(dir string) (*params.Config, error) {
	defaults := params.DefaultConfig()

	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("evo")
	v.AutomaticEnv()

	v.SetDefault("fees.add_assets", defaults.Fees.AddAssets)
	v.SetDefault("fees.del_assets", defaults.Fees.DelAssets)
	v.SetDefault("fees.create_wallet", defaults.Fees.CreateWallet)
	v.SetDefault("fees.transfer", defaults.Fees.Transfer)
	v.SetDefault("fees.exchange", defaults.Fees.Exchange)
	v.SetDefault("fees.exchange_intermediary", defaults.Fees.ExchangeIntermediary)
	v.SetDefault("fees.trade", defaults.Fees.Trade)
	v.SetDefault("fees.trade_intermediary", defaults.Fees.TradeIntermediary)
	v.SetDefault("fees.per_asset", defaults.Fees.PerAsset)
	v.SetDefault("init_balance", defaults.InitBalance)
	v.SetDefault("mining_reward", defaults.MiningReward)
	v.SetDefault("wallet_reseed", defaults.WalletReseed)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &params.Config{
		Fees:         fc.Fees,
		InitBalance:  fc.InitBalance,
		MiningReward: fc.MiningReward,
		WalletReseed: fc.WalletReseed,
	}
	if fc.Treasury != "" {
		key, err := common.ParsePubKey(fc.Treasury)
		if err != nil {
			return nil, fmt.Errorf("treasury key: %w", err)
		}
		cfg.Treasury = key
	}
	if fc.MinerKey != "" {
		key, err := common.ParsePubKey(fc.MinerKey)
		if err != nil {
			return nil, fmt.Errorf("miner key: %w", err)
		}
		cfg.MinerKey = key
	}
	return cfg, nil
}
