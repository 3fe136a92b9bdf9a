package cli

const (
	FlagStakingDenom           = "staking-denom"
	FlagBaseRewardDenom        = "base-reward-denom"
	FlagRewardDenoms           = "reward-denoms"
	FlagController             = "controller"
	FlagCommunityFeeCollector  = "community-fee-collector"
	FlagPlatformFeeCollector   = "platform-fee-collector"
	FlagControllerFeeCollector = "controller-fee-collector"
	FlagCommunityFee           = "community-fee"
	FlagPlatformFee            = "platform-fee"
	FlagControllerFee          = "controller-fee"
	FlagPaused                 = "paused"
	FlagVaultID                = "vault-id"
	FlagAmount                 = "amount"
	FlagAssets                 = "assets"
	FlagShare                  = "share"
	FlagTo                     = "to"
	FlagMinimumReceive         = "min-receive"
	FlagNoSwap                 = "no-swap"
	FlagSlippageTolerance      = "slippage"
	FlagStaker                 = "staker"
)
