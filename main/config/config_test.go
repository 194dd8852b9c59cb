package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EvoNetworkLtd/evochain-core/chain/params"
	"github.com/EvoNetworkLtd/evochain-core/common/crypto"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, params.DefaultConfig().Fees, cfg.Fees)
	assert.Equal(t, params.InitBalance, cfg.InitBalance)
	assert.True(t, cfg.WalletReseed)
	assert.False(t, cfg.RestrictsMiner())
}

func TestLoad_File(t *testing.T) {
	treasury, _, err := crypto.GenerateKeyPair()
	assert.NoError(t, err)

	dir := t.TempDir()
	content := "init_balance: 250\nwallet_reseed: false\ntreasury: " + treasury.String() + "\nfees:\n  transfer: 9\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, uint64(250), cfg.InitBalance)
	assert.False(t, cfg.WalletReseed)
	assert.Equal(t, treasury, cfg.Treasury)
	assert.Equal(t, uint64(9), cfg.Fees.Transfer)
	// untouched keys keep their defaults
	assert.Equal(t, params.ExchangeFee, cfg.Fees.Exchange)
}

func TestLoad_BadTreasury(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("treasury: not-a-key\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
