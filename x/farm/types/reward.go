package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
)

// RewardInfo is the per-staker record of one vault. DepositAmount and
// DepositCosts are a cost basis, not a balance: they rescale proportionally
// on unbond and cap the vesting of freshly compounded gains.
type RewardInfo struct {
	BondShare     sdk.Int   `json:"bond_share"`
	TransferShare sdk.Int   `json:"transfer_share"`
	DepositAmount sdk.Int   `json:"deposit_amount"`
	DepositTime   int64     `json:"deposit_time"`
	DepositCosts  []sdk.Int `json:"deposit_costs"`
}

func NewRewardInfo(assetCount int) *RewardInfo {
	costs := make([]sdk.Int, assetCount)
	for i := range costs {
		costs[i] = sdk.ZeroInt()
	}
	return &RewardInfo{
		BondShare:     sdk.ZeroInt(),
		TransferShare: sdk.ZeroInt(),
		DepositAmount: sdk.ZeroInt(),
		DepositTime:   0,
		DepositCosts:  costs,
	}
}

// TotalShare is the staker's full claim on the share denominator.
func (r *RewardInfo) TotalShare() sdk.Int {
	return r.BondShare.Add(r.TransferShare)
}

// RecordDeposit books a new deposit: the deposit time becomes the
// amount-weighted average of the old and new deposits, and the cost basis
// grows by the deposit's proportional claim on the pool reserves.
func (r *RewardInfo) RecordDeposit(depositAmount sdk.Int, now int64, poolBalances []sdk.Int, lpSupply sdk.Int) sdk.Error {
	depositTime, err := ComputeDepositTime(r.DepositAmount, depositAmount, r.DepositTime, now)
	if err != nil {
		return err
	}
	r.DepositTime = depositTime
	if lpSupply.IsPositive() {
		for i := range r.DepositCosts {
			if i < len(poolBalances) {
				r.DepositCosts[i] = r.DepositCosts[i].Add(MulAndDiv(poolBalances[i], depositAmount, lpSupply))
			}
		}
	}
	r.DepositAmount = r.DepositAmount.Add(depositAmount)
	return nil
}

// CalcUserBalance returns the staker's withdrawable LP amount. Within the
// vesting window only the gain over the cost basis is time-locked; the
// originally deposited value is always fully available.
func (r *RewardInfo) CalcUserBalance(state *VaultState, lpBalance sdk.Int, now, vestingDuration int64) sdk.Int {
	amount := state.CalcBondAmount(lpBalance, r.TotalShare())
	elapsed := now - r.DepositTime
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < vestingDuration && amount.GT(r.DepositAmount) {
		gain := amount.Sub(r.DepositAmount)
		return r.DepositAmount.Add(MulAndDiv(gain, sdk.NewInt(elapsed), sdk.NewInt(vestingDuration)))
	}
	return amount
}

// Unbond burns share and rescales the cost basis by the fraction of balance
// withdrawn, preserving the per-unit cost of what remains.
func (r *RewardInfo) Unbond(share, releasedAmount, balanceBefore sdk.Int) sdk.Error {
	fromBond := sdk.MinInt(share, r.BondShare)
	r.BondShare = r.BondShare.Sub(fromBond)
	fromTransfer := share.Sub(fromBond)
	if fromTransfer.GT(r.TransferShare) {
		return sdk.ErrInternal("bond share underflow")
	}
	r.TransferShare = r.TransferShare.Sub(fromTransfer)

	r.rescale(releasedAmount, balanceBefore)
	return nil
}

func (r *RewardInfo) rescale(releasedAmount, balanceBefore sdk.Int) {
	if !balanceBefore.IsPositive() || releasedAmount.GT(balanceBefore) {
		r.DepositAmount = sdk.ZeroInt()
		for i := range r.DepositCosts {
			r.DepositCosts[i] = sdk.ZeroInt()
		}
		return
	}
	remaining := balanceBefore.Sub(releasedAmount)
	r.DepositAmount = MulAndDiv(r.DepositAmount, remaining, balanceBefore)
	for i := range r.DepositCosts {
		r.DepositCosts[i] = MulAndDiv(r.DepositCosts[i], remaining, balanceBefore)
	}
}

// TransferTo moves share units to another staker's transfer share. The
// sender's cost basis rescales as if the moved fraction had been withdrawn;
// the receiver's claim is not independently vested.
func (r *RewardInfo) TransferTo(recipient *RewardInfo, share sdk.Int) sdk.Error {
	total := r.TotalShare()
	if share.GT(total) {
		return ErrInvalidAmount("insufficient share")
	}
	fromTransfer := sdk.MinInt(share, r.TransferShare)
	r.TransferShare = r.TransferShare.Sub(fromTransfer)
	r.BondShare = r.BondShare.Sub(share.Sub(fromTransfer))

	r.rescale(share, total)
	recipient.TransferShare = recipient.TransferShare.Add(share)
	return nil
}
