package lpstaking

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"
)

func NewHandler(k Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgStake:
			return k.Stake(ctx, msg.From, msg.Denom, msg.Amount)
		case types.MsgUnstake:
			return k.Unstake(ctx, msg.From, msg.Denom, msg.Amount)
		case types.MsgClaim:
			return k.Claim(ctx, msg.From, msg.Denom)
		default:
			errMsg := fmt.Sprintf("unrecognized lpstaking message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}
