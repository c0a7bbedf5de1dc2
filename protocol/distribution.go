// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// MsgWithdrawDelegatorReward withdraws the rewards accrued by a delegation.
type MsgWithdrawDelegatorReward struct {
	DelegatorAddress AccAddress `json:"delegator_address" validate:"required"`
	ValidatorAddress ValAddress `json:"validator_address" validate:"required"`
}

func (m MsgWithdrawDelegatorReward) Route() string { return "distr" }
func (m MsgWithdrawDelegatorReward) Type() MsgType { return MsgTypeWithdrawDelegatorReward }

func (m MsgWithdrawDelegatorReward) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgWithdrawDelegatorReward) GetSigners() []AccAddress {
	return []AccAddress{m.DelegatorAddress}
}

// MsgWithdrawValidatorCommission claims a validator's accumulated
// commission. Signed by the operator's account key.
type MsgWithdrawValidatorCommission struct {
	ValidatorAddress ValAddress `json:"validator_address" validate:"required"`
}

func (m MsgWithdrawValidatorCommission) Route() string { return "distr" }
func (m MsgWithdrawValidatorCommission) Type() MsgType { return MsgTypeWithdrawValidatorCommission }

func (m MsgWithdrawValidatorCommission) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgWithdrawValidatorCommission) GetSigners() []AccAddress {
	return []AccAddress{AccAddress(m.ValidatorAddress)}
}
