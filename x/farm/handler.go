package farm

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
)

func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgCreateVault:
			return k.CreateVault(ctx, msg)
		case types.MsgUpdateVault:
			return k.UpdateVault(ctx, msg)
		case types.MsgBond:
			staker := msg.From
			if msg.Staker != nil {
				staker = *msg.Staker
			}
			return k.Bond(ctx, msg.From, staker, msg.VaultID, msg.Amount)
		case types.MsgBondAssets:
			return k.BondAssets(ctx, msg.From, msg.VaultID, msg.Assets, msg.MinimumReceive, msg.NoSwap, msg.SlippageTolerance)
		case types.MsgUnbond:
			return k.Unbond(ctx, msg.From, msg.VaultID, msg.Amount)
		case types.MsgTransferShare:
			return k.TransferShare(ctx, msg.From, msg.To, msg.VaultID, msg.Share)
		case types.MsgCompound:
			return k.Compound(ctx, msg.From, msg.VaultID, msg.MinimumReceive, msg.SlippageTolerance)
		case types.MsgCallback:
			return k.HandleCallback(ctx, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized farm message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}
