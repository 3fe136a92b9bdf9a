package farm

import (
	"testing"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
	"github.com/stretchr/testify/assert"
)

func genesisVault(id uint32) *types.Vault {
	addr := sdk.NewCUAddress()
	return types.NewVault(id, "eth", "btc", nil, addr, addr, addr, addr, addr,
		sdk.NewDecWithPrec(2, 2), sdk.ZeroDec(), sdk.NewDecWithPrec(3, 2))
}

func TestValidateGenesis(t *testing.T) {
	assert.NoError(t, ValidateGenesis(DefaultGenesisState()))

	gs := DefaultGenesisState()
	gs.Vaults = []*types.Vault{genesisVault(1)}
	state := types.NewVaultState(1)
	state.TotalBondShare = sdk.NewInt(3000)
	gs.VaultStates = []*types.VaultState{state}

	// state claims share but no staker holds any
	assert.Error(t, ValidateGenesis(gs))

	info := types.NewRewardInfo(2)
	info.BondShare = sdk.NewInt(2000)
	info.TransferShare = sdk.NewInt(1000)
	gs.RewardInfos = []GenesisRewardInfo{{VaultID: 1, Staker: sdk.NewCUAddress(), Info: info}}
	assert.NoError(t, ValidateGenesis(gs))

	gs.RewardInfos[0].VaultID = 2
	assert.Error(t, ValidateGenesis(gs))
	gs.RewardInfos[0].VaultID = 1

	gs.Vaults = append(gs.Vaults, genesisVault(1))
	assert.Error(t, ValidateGenesis(gs))
}
