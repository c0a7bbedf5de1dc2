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

// MsgIssueToken registers a new fungible token under an owner.
type MsgIssueToken struct {
	Symbol        string     `json:"symbol" validate:"required,denom"`
	Name          string     `json:"name" validate:"required,max=32"`
	Scale         uint32     `json:"scale" validate:"lte=18"`
	MinUnit       string     `json:"min_unit" validate:"required,denom"`
	InitialSupply uint64     `json:"initial_supply"`
	MaxSupply     uint64     `json:"max_supply"`
	Mintable      bool       `json:"mintable"`
	Owner         AccAddress `json:"owner" validate:"required"`
}

func (m MsgIssueToken) Route() string { return "token" }
func (m MsgIssueToken) Type() MsgType { return MsgTypeIssueToken }

func (m MsgIssueToken) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	if m.MaxSupply > 0 && m.InitialSupply > m.MaxSupply {
		return errors.BadRequest.WithFormat("initial supply %d exceeds max supply %d", m.InitialSupply, m.MaxSupply)
	}
	return nil
}

func (m MsgIssueToken) GetSigners() []AccAddress {
	return []AccAddress{m.Owner}
}

// MsgMintToken mints units of an existing token. Minting to an empty address
// mints to the owner.
type MsgMintToken struct {
	Symbol string     `json:"symbol" validate:"required,denom"`
	Amount uint64     `json:"amount" validate:"required"`
	To     AccAddress `json:"to,omitempty"`
	Owner  AccAddress `json:"owner" validate:"required"`
}

func (m MsgMintToken) Route() string { return "token" }
func (m MsgMintToken) Type() MsgType { return MsgTypeMintToken }

func (m MsgMintToken) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgMintToken) GetSigners() []AccAddress {
	return []AccAddress{m.Owner}
}

// MsgEditToken updates the mutable fields of a token. Zero values leave the
// corresponding field unchanged; Mintable is a pointer for the same reason.
type MsgEditToken struct {
	Symbol    string     `json:"symbol" validate:"required,denom"`
	Name      string     `json:"name,omitempty" validate:"max=32"`
	MaxSupply uint64     `json:"max_supply,omitempty"`
	Mintable  *bool      `json:"mintable,omitempty"`
	Owner     AccAddress `json:"owner" validate:"required"`
}

func (m MsgEditToken) Route() string { return "token" }
func (m MsgEditToken) Type() MsgType { return MsgTypeEditToken }

func (m MsgEditToken) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgEditToken) GetSigners() []AccAddress {
	return []AccAddress{m.Owner}
}

// MsgTransferTokenOwner hands a token over to a new owner.
type MsgTransferTokenOwner struct {
	SrcOwner AccAddress `json:"src_owner" validate:"required"`
	DstOwner AccAddress `json:"dst_owner" validate:"required"`
	Symbol   string     `json:"symbol" validate:"required,denom"`
}

func (m MsgTransferTokenOwner) Route() string { return "token" }
func (m MsgTransferTokenOwner) Type() MsgType { return MsgTypeTransferTokenOwner }

func (m MsgTransferTokenOwner) ValidateBasic() error {
	if err := validateFields(m); err != nil {
		return err
	}
	if bytes.Equal(m.SrcOwner, m.DstOwner) {
		return errors.BadRequest.With("source and destination owners are the same account")
	}
	return nil
}

func (m MsgTransferTokenOwner) GetSigners() []AccAddress {
	return []AccAddress{m.SrcOwner}
}
