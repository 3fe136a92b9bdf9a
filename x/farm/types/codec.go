package types

import (
	"github.com/hbtc-chain/bhchain/codec"
)

var ModuleCdc = codec.New()

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterInterface((*Callback)(nil), nil)
	cdc.RegisterConcrete(&Vault{}, "hbtcchain/farm/Vault", nil)
	cdc.RegisterConcrete(&VaultState{}, "hbtcchain/farm/VaultState", nil)
	cdc.RegisterConcrete(&RewardInfo{}, "hbtcchain/farm/RewardInfo", nil)
	cdc.RegisterConcrete(StakeCallback{}, "hbtcchain/farm/StakeCallback", nil)
	cdc.RegisterConcrete(BondToCallback{}, "hbtcchain/farm/BondToCallback", nil)
	cdc.RegisterConcrete(MsgCreateVault{}, "hbtcchain/farm/MsgCreateVault", nil)
	cdc.RegisterConcrete(MsgUpdateVault{}, "hbtcchain/farm/MsgUpdateVault", nil)
	cdc.RegisterConcrete(MsgBond{}, "hbtcchain/farm/MsgBond", nil)
	cdc.RegisterConcrete(MsgBondAssets{}, "hbtcchain/farm/MsgBondAssets", nil)
	cdc.RegisterConcrete(MsgUnbond{}, "hbtcchain/farm/MsgUnbond", nil)
	cdc.RegisterConcrete(MsgTransferShare{}, "hbtcchain/farm/MsgTransferShare", nil)
	cdc.RegisterConcrete(MsgCompound{}, "hbtcchain/farm/MsgCompound", nil)
	cdc.RegisterConcrete(MsgCallback{}, "hbtcchain/farm/MsgCallback", nil)
}

func init() {
	RegisterCodec(ModuleCdc)
	codec.RegisterCrypto(ModuleCdc)
	ModuleCdc.Seal()
}
