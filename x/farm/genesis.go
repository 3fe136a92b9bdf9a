package farm

import (
	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/keeper"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
)

type GenesisRewardInfo struct {
	VaultID uint32            `json:"vault_id"`
	Staker  sdk.CUAddress     `json:"staker"`
	Info    *types.RewardInfo `json:"info"`
}

type GenesisState struct {
	Params      types.Params        `json:"params"`
	Vaults      []*types.Vault      `json:"vaults"`
	VaultStates []*types.VaultState `json:"vault_states"`
	RewardInfos []GenesisRewardInfo `json:"reward_infos"`
}

func NewGenesisState(params types.Params) GenesisState {
	return GenesisState{
		Params: params,
	}
}

func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}
	vaultIDs := make(map[uint32]bool)
	for _, vault := range data.Vaults {
		if err := vault.Validate(); err != nil {
			return err
		}
		if vaultIDs[vault.ID] {
			return errors.Errorf("duplicated vault id %d", vault.ID)
		}
		vaultIDs[vault.ID] = true
	}
	shareSums := make(map[uint32]sdk.Int)
	for _, info := range data.RewardInfos {
		if !vaultIDs[info.VaultID] {
			return errors.Errorf("reward info of staker %s references unknown vault %d", info.Staker, info.VaultID)
		}
		sum, ok := shareSums[info.VaultID]
		if !ok {
			sum = sdk.ZeroInt()
		}
		shareSums[info.VaultID] = sum.Add(info.Info.TotalShare())
	}
	for _, state := range data.VaultStates {
		if !vaultIDs[state.VaultID] {
			return errors.Errorf("state references unknown vault %d", state.VaultID)
		}
		sum, ok := shareSums[state.VaultID]
		if !ok {
			sum = sdk.ZeroInt()
		}
		if !sum.Equal(state.TotalBondShare) {
			return errors.Errorf("vault %d staker shares %s do not sum to total bond share %s",
				state.VaultID, sum, state.TotalBondShare)
		}
	}
	return nil
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: types.DefaultParams(),
	}
}

func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) []abci.ValidatorUpdate {
	k.SetParams(ctx, data.Params)
	nextID := uint32(1)
	for _, vault := range data.Vaults {
		k.SaveVault(ctx, vault)
		if vault.ID >= nextID {
			nextID = vault.ID + 1
		}
	}
	k.SetNextVaultID(ctx, nextID)
	for _, state := range data.VaultStates {
		k.SaveVaultState(ctx, state)
	}
	for _, info := range data.RewardInfos {
		k.SaveRewardInfo(ctx, info.VaultID, info.Staker, info.Info)
	}
	return []abci.ValidatorUpdate{}
}

func ExportGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	gs := GenesisState{
		Params: k.GetParams(ctx),
		Vaults: k.GetAllVaults(ctx),
	}
	for _, vault := range gs.Vaults {
		gs.VaultStates = append(gs.VaultStates, k.GetVaultState(ctx, vault.ID))
		for staker, info := range k.GetAllRewardInfos(ctx, vault.ID) {
			addr, err := sdk.CUAddressFromBase58(staker)
			if err != nil {
				continue
			}
			gs.RewardInfos = append(gs.RewardInfos, GenesisRewardInfo{
				VaultID: vault.ID,
				Staker:  addr,
				Info:    info,
			})
		}
	}
	return gs
}
