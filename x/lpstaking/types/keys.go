package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/tendermint/tendermint/crypto"
)

const (
	// ModuleName is the name of this module
	ModuleName = "lpstaking"

	// RouterKey is used to route messages
	RouterKey = ModuleName

	// StoreKey is the prefix under which we store this module's data
	StoreKey = ModuleName

	// QuerierKey is used to handle abci_query requests
	QuerierKey = ModuleName

	// DefaultParamspace default name for parameter store
	DefaultParamspace = ModuleName
)

var (
	ModuleCUAddress = sdk.CUAddress(crypto.AddressHash([]byte(ModuleName)))
)

var (
	TotalBondKeyPrefix  = []byte{0x01}
	GlobalMaskKeyPrefix = []byte{0x02}
	BondKeyPrefix       = []byte{0x03}
	AddrMaskKeyPrefix   = []byte{0x04}
)

func TotalBondKey(denom sdk.Symbol) []byte {
	return append(TotalBondKeyPrefix, denom...)
}

func GlobalMaskKey(denom sdk.Symbol) []byte {
	return append(GlobalMaskKeyPrefix, denom...)
}

func BondKey(denom sdk.Symbol, addr sdk.CUAddress) []byte {
	key := append(BondKeyPrefix, denom...)
	return append(key, addr...)
}

func AddrMaskKey(denom sdk.Symbol, addr sdk.CUAddress) []byte {
	key := append(AddrMaskKeyPrefix, denom...)
	return append(key, addr...)
}
