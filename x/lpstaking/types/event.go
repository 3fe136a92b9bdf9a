package types

const (
	EventTypeStake   = "stake"
	EventTypeUnstake = "unstake"
	EventTypeClaim   = "claim"
	EventTypeMining  = "mining"

	AttributeKeyAddress = "address"
	AttributeKeyDenom   = "denom"
	AttributeKeyAmount  = "amount"
)
