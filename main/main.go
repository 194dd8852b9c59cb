package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/inconshreveable/log15"
	"gopkg.in/urfave/cli.v1"

	"github.com/EvoNetworkLtd/evochain-core/chain/account"
	"github.com/EvoNetworkLtd/evochain-core/chain/types"
	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
	"github.com/EvoNetworkLtd/evochain-core/common/log"
	"github.com/EvoNetworkLtd/evochain-core/main/config"
	"github.com/EvoNetworkLtd/evochain-core/store"
)

var (
	app = cli.NewApp()

	dataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the ledger database and config file",
		Value: "./evodata",
	}
	logLevelFlag = cli.IntFlag{
		Name:  "loglevel",
		Usage: "Output log level: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value: 3,
	}
)

func init() {
	app.Name = "evochain"
	app.Usage = "the evochain ledger command line interface"
	app.HideVersion = true
	app.Flags = []cli.Flag{dataDirFlag, logLevelFlag}
	app.Commands = []cli.Command{
		keygenCommand,
		initCommand,
		walletCommand,
		assetCommand,
		statusCommand,
		configCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Before = func(ctx *cli.Context) error {
		log.Setup(log15.Lvl(ctx.GlobalInt(logLevelFlag.Name)), "")
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var keygenCommand = cli.Command{
	Name:   "keygen",
	Usage:  "Generate a new keypair",
	Action: keygen,
}

func keygen(ctx *cli.Context) error {
	pub, priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return err
	}
	color.Green("public:  %s", pub)
	color.Yellow("private: %s", hex.EncodeToString(priv.Serialize()))
	return nil
}

var initCommand = cli.Command{
	Name:   "init",
	Usage:  "Initialize the ledger database and seed the treasury wallet",
	Action: initLedger,
}

func initLedger(ctx *cli.Context) error {
	dir := ctx.GlobalString(dataDirFlag.Name)
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if cfg.Treasury == (common.PublicKey{}) {
		return fmt.Errorf("no treasury key configured, set treasury in %s.yaml", config.FileName)
	}

	db, err := store.NewLDBDatabase(dir)
	if err != nil {
		return err
	}
	defer db.Close()

	fork := db.Fork()
	m := account.NewManager(fork)
	has, err := m.HasWallet(cfg.Treasury)
	if err != nil {
		return err
	}
	if has {
		log.Info("ledger already initialized", "treasury", cfg.Treasury.TerminalString())
		return nil
	}
	m.SetWallet(cfg.Treasury, types.NewWallet(cfg.InitBalance))
	if err := m.Save(); err != nil {
		return err
	}
	if err := fork.(*store.LDBFork).Commit(); err != nil {
		return err
	}
	color.Green("ledger initialized, treasury %s seeded with %d", cfg.Treasury, cfg.InitBalance)
	return nil
}

var walletCommand = cli.Command{
	Name:      "wallet",
	Usage:     "Show a wallet's balance and asset holdings",
	ArgsUsage: "<pubkey>",
	Action:    showWallet,
}

func showWallet(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("wallet needs exactly one public key argument")
	}
	key, err := common.ParsePubKey(ctx.Args().First())
	if err != nil {
		return err
	}
	return withFork(ctx, func(fork store.Fork) error {
		w, err := account.ReadWallet(fork, key)
		if err != nil {
			return err
		}
		color.Cyan("wallet %s", key)
		fmt.Printf("balance: %d\n", w.Balance)
		for _, b := range w.Assets {
			fmt.Printf("asset %s: %d\n", b.ID, b.Amount)
		}
		return nil
	})
}

var assetCommand = cli.Command{
	Name:      "asset",
	Usage:     "Show an asset's registry entry",
	ArgsUsage: "<asset-id>",
	Action:    showAsset,
}

func showAsset(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("asset needs exactly one identifier argument")
	}
	id, err := types.ParseAssetID(ctx.Args().First())
	if err != nil {
		return err
	}
	return withFork(ctx, func(fork store.Fork) error {
		info, err := account.ReadAssetInfo(fork, id)
		if err != nil {
			return err
		}
		color.Cyan("asset %s", id)
		fmt.Printf("creator: %s\n", info.Creator)
		fmt.Printf("circulating: %d\n", info.Amount)
		fmt.Printf("fees: fixed %d, tax %d per unit\n", info.Fees.Fixed, info.Fees.Tax)
		return nil
	})
}

var statusCommand = cli.Command{
	Name:      "status",
	Usage:     "Show the execution status of a transaction",
	ArgsUsage: "<tx-hash>",
	Action:    showStatus,
}

func showStatus(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("status needs exactly one transaction hash argument")
	}
	var hash common.Hash
	if err := hash.UnmarshalText([]byte(ctx.Args().First())); err != nil {
		return err
	}
	return withFork(ctx, func(fork store.Fork) error {
		status, err := account.GetTxStatus(fork, hash)
		if err != nil {
			return err
		}
		if status.Success {
			color.Green("success")
		} else {
			color.Red("failed: %s", status.Error)
		}
		return nil
	})
}

var configCommand = cli.Command{
	Name:   "config",
	Usage:  "Print the effective network configuration for datadir",
	Action: showConfig,
}

func showConfig(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.GlobalString(dataDirFlag.Name))
	if err != nil {
		return err
	}
	fmt.Printf("treasury: %s\n", cfg.Treasury)
	fmt.Printf("init balance: %d\n", cfg.InitBalance)
	fmt.Printf("mining reward: %d\n", cfg.MiningReward)
	fmt.Printf("wallet reseed: %v\n", cfg.WalletReseed)
	if cfg.RestrictsMiner() {
		fmt.Printf("miner key: %s\n", cfg.MinerKey)
	}
	fmt.Printf("fees: create wallet %d, add assets %d (+%d per asset), del assets %d, transfer %d, exchange %d/%d, trade %d/%d\n",
		cfg.Fees.CreateWallet, cfg.Fees.AddAssets, cfg.Fees.PerAsset, cfg.Fees.DelAssets, cfg.Fees.Transfer,
		cfg.Fees.Exchange, cfg.Fees.ExchangeIntermediary, cfg.Fees.Trade, cfg.Fees.TradeIntermediary)
	return nil
}

// withFork opens the ledger database under datadir and hands a read fork
// to fn.
func withFork(ctx *cli.Context, fn func(fork store.Fork) error) error {
	db, err := store.NewLDBDatabase(ctx.GlobalString(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db.Fork())
}
