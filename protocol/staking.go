// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"bytes"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// MsgDelegate delegates coins to a validator.
type MsgDelegate struct {
	DelegatorAddress AccAddress `json:"delegator_address" validate:"required"`
	ValidatorAddress ValAddress `json:"validator_address" validate:"required"`
	Amount           Coin       `json:"amount" validate:"required"`
}

func (m MsgDelegate) Route() string { return "staking" }
func (m MsgDelegate) Type() MsgType { return MsgTypeDelegate }

func (m MsgDelegate) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	if !m.Amount.IsValid() {
		return errors.BadRequest.WithFormat("invalid delegation amount %s", m.Amount)
	}
	return nil
}

func (m MsgDelegate) GetSigners() []AccAddress {
	return []AccAddress{m.DelegatorAddress}
}

// MsgUndelegate removes a delegation from a validator.
type MsgUndelegate struct {
	DelegatorAddress AccAddress `json:"delegator_address" validate:"required"`
	ValidatorAddress ValAddress `json:"validator_address" validate:"required"`
	Amount           Coin       `json:"amount" validate:"required"`
}

func (m MsgUndelegate) Route() string { return "staking" }
func (m MsgUndelegate) Type() MsgType { return MsgTypeUndelegate }

func (m MsgUndelegate) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	if !m.Amount.IsValid() {
		return errors.BadRequest.WithFormat("invalid undelegation amount %s", m.Amount)
	}
	return nil
}

func (m MsgUndelegate) GetSigners() []AccAddress {
	return []AccAddress{m.DelegatorAddress}
}

// MsgBeginRedelegate moves a delegation from one validator to another.
type MsgBeginRedelegate struct {
	DelegatorAddress    AccAddress `json:"delegator_address" validate:"required"`
	ValidatorSrcAddress ValAddress `json:"validator_src_address" validate:"required"`
	ValidatorDstAddress ValAddress `json:"validator_dst_address" validate:"required"`
	Amount              Coin       `json:"amount" validate:"required"`
}

func (m MsgBeginRedelegate) Route() string { return "staking" }
func (m MsgBeginRedelegate) Type() MsgType { return MsgTypeBeginRedelegate }

func (m MsgBeginRedelegate) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	if bytes.Equal(m.ValidatorSrcAddress, m.ValidatorDstAddress) {
		return errors.BadRequest.With("redelegation source and destination are the same validator")
	}
	if !m.Amount.IsValid() {
		return errors.BadRequest.WithFormat("invalid redelegation amount %s", m.Amount)
	}
	return nil
}

func (m MsgBeginRedelegate) GetSigners() []AccAddress {
	return []AccAddress{m.DelegatorAddress}
}
