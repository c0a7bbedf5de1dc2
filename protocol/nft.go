// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// MsgIssueDenom registers a new NFT classification under a sender.
type MsgIssueDenom struct {
	ID     string     `json:"id" validate:"required,denom"`
	Name   string     `json:"name,omitempty"`
	Schema string     `json:"schema,omitempty"`
	Sender AccAddress `json:"sender" validate:"required"`
}

func (m MsgIssueDenom) Route() string { return "nft" }
func (m MsgIssueDenom) Type() MsgType { return MsgTypeIssueDenom }

func (m MsgIssueDenom) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgIssueDenom) GetSigners() []AccAddress {
	return []AccAddress{m.Sender}
}

// MsgMintNFT mints a token of a denom. An empty recipient mints to the
// sender.
type MsgMintNFT struct {
	ID        string     `json:"id" validate:"required,denom"`
	DenomID   string     `json:"denom_id" validate:"required,denom"`
	Name      string     `json:"name,omitempty"`
	URI       string     `json:"uri,omitempty" validate:"omitempty,uri"`
	Data      string     `json:"data,omitempty"`
	Sender    AccAddress `json:"sender" validate:"required"`
	Recipient AccAddress `json:"recipient,omitempty"`
}

func (m MsgMintNFT) Route() string { return "nft" }
func (m MsgMintNFT) Type() MsgType { return MsgTypeMintNFT }

func (m MsgMintNFT) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgMintNFT) GetSigners() []AccAddress {
	return []AccAddress{m.Sender}
}

// MsgEditNFT updates the metadata of a token.
type MsgEditNFT struct {
	ID      string     `json:"id" validate:"required,denom"`
	DenomID string     `json:"denom_id" validate:"required,denom"`
	Name    string     `json:"name,omitempty"`
	URI     string     `json:"uri,omitempty" validate:"omitempty,uri"`
	Data    string     `json:"data,omitempty"`
	Sender  AccAddress `json:"sender" validate:"required"`
}

func (m MsgEditNFT) Route() string { return "nft" }
func (m MsgEditNFT) Type() MsgType { return MsgTypeEditNFT }

func (m MsgEditNFT) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgEditNFT) GetSigners() []AccAddress {
	return []AccAddress{m.Sender}
}

// MsgTransferNFT transfers a token to a new owner.
type MsgTransferNFT struct {
	ID        string     `json:"id" validate:"required,denom"`
	DenomID   string     `json:"denom_id" validate:"required,denom"`
	Sender    AccAddress `json:"sender" validate:"required"`
	Recipient AccAddress `json:"recipient" validate:"required"`
}

func (m MsgTransferNFT) Route() string { return "nft" }
func (m MsgTransferNFT) Type() MsgType { return MsgTypeTransferNFT }

func (m MsgTransferNFT) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgTransferNFT) GetSigners() []AccAddress {
	return []AccAddress{m.Sender}
}

// MsgBurnNFT destroys a token.
type MsgBurnNFT struct {
	ID      string     `json:"id" validate:"required,denom"`
	DenomID string     `json:"denom_id" validate:"required,denom"`
	Sender  AccAddress `json:"sender" validate:"required"`
}

func (m MsgBurnNFT) Route() string { return "nft" }
func (m MsgBurnNFT) Type() MsgType { return MsgTypeBurnNFT }

func (m MsgBurnNFT) ValidateBasic() error {
	return validateFields(m)
}

func (m MsgBurnNFT) GetSigners() []AccAddress {
	return []AccAddress{m.Sender}
}
