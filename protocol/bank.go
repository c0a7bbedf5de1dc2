// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// MsgSend transfers coins from one account to another.
type MsgSend struct {
	FromAddress AccAddress `json:"from_address" validate:"required"`
	ToAddress   AccAddress `json:"to_address" validate:"required"`
	Amount      Coins      `json:"amount" validate:"required"`
}

func (m MsgSend) Route() string { return "bank" }
func (m MsgSend) Type() MsgType { return MsgTypeSend }

func (m MsgSend) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	return m.Amount.Validate()
}

func (m MsgSend) GetSigners() []AccAddress {
	return []AccAddress{m.FromAddress}
}

// Input is a source of a multi-party transfer.
type Input struct {
	Address AccAddress `json:"address" validate:"required"`
	Coins   Coins      `json:"coins" validate:"required"`
}

// Output is a destination of a multi-party transfer.
type Output struct {
	Address AccAddress `json:"address" validate:"required"`
	Coins   Coins      `json:"coins" validate:"required"`
}

// MsgMultiSend transfers coins from a set of inputs to a set of outputs. The
// totals on both sides must balance.
type MsgMultiSend struct {
	Inputs  []Input  `json:"inputs" validate:"required,dive"`
	Outputs []Output `json:"outputs" validate:"required,dive"`
}

func (m MsgMultiSend) Route() string { return "bank" }
func (m MsgMultiSend) Type() MsgType { return MsgTypeMultiSend }

func (m MsgMultiSend) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}

	var totalIn, totalOut Coins
	for _, in := range m.Inputs {
		if err := in.Coins.Validate(); err != nil {
			return errors.BadRequest.WithCauseAndFormat(err, "invalid input for %v", in.Address)
		}
		totalIn = totalIn.Add(in.Coins...)
	}
	for _, out := range m.Outputs {
		if err := out.Coins.Validate(); err != nil {
			return errors.BadRequest.WithCauseAndFormat(err, "invalid output for %v", out.Address)
		}
		totalOut = totalOut.Add(out.Coins...)
	}

	if !totalIn.Equal(totalOut) {
		return errors.BadRequest.WithFormat("inputs %v and outputs %v do not balance", totalIn, totalOut)
	}
	return nil
}

func (m MsgMultiSend) GetSigners() []AccAddress {
	signers := make([]AccAddress, len(m.Inputs))
	for i, in := range m.Inputs {
		signers[i] = in.Address
	}
	return signers
}
