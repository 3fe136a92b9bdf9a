package types

import (
	"github.com/hbtc-chain/bhchain/codec"
)

var ModuleCdc = codec.New()

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgStake{}, "hbtcchain/lpstaking/MsgStake", nil)
	cdc.RegisterConcrete(MsgUnstake{}, "hbtcchain/lpstaking/MsgUnstake", nil)
	cdc.RegisterConcrete(MsgClaim{}, "hbtcchain/lpstaking/MsgClaim", nil)
}

func init() {
	RegisterCodec(ModuleCdc)
	codec.RegisterCrypto(ModuleCdc)
	ModuleCdc.Seal()
}
