package types

import (
	"encoding/binary"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/tendermint/tendermint/crypto"
)

const (
	// ModuleName is the name of this module
	ModuleName = "farm"

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
	NextVaultIDKey      = []byte{0x00}
	VaultKeyPrefix      = []byte{0x01}
	VaultDenomKeyPrefix = []byte{0x02}
	VaultStateKeyPrefix = []byte{0x03}
	RewardInfoKeyPrefix = []byte{0x04}
)

func VaultKey(vaultID uint32) []byte {
	return append(VaultKeyPrefix, uint32ToBigEndian(vaultID)...)
}

func VaultDenomKey(denom sdk.Symbol) []byte {
	return append(VaultDenomKeyPrefix, denom...)
}

func VaultStateKey(vaultID uint32) []byte {
	return append(VaultStateKeyPrefix, uint32ToBigEndian(vaultID)...)
}

func RewardInfoKeyPrefixWithVault(vaultID uint32) []byte {
	return append(RewardInfoKeyPrefix, uint32ToBigEndian(vaultID)...)
}

func RewardInfoKey(vaultID uint32, staker sdk.CUAddress) []byte {
	return append(RewardInfoKeyPrefixWithVault(vaultID), staker...)
}

func uint32ToBigEndian(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}

func GetStakerFromRewardInfoKey(key []byte) sdk.CUAddress {
	prefixLen := len(RewardInfoKeyPrefix) + 4
	return sdk.CUAddress(key[prefixLen:])
}
