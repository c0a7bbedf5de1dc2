// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// Msg is a single chain operation. The set of implementations is closed;
// NewMsg enumerates every kind.
type Msg interface {
	// Route returns the module the message belongs to.
	Route() string

	// Type returns the message kind.
	Type() MsgType

	// ValidateBasic performs stateless validation of the message fields.
	ValidateBasic() error

	// GetSigners returns the addresses that must sign the message.
	GetSigners() []AccAddress
}

// RawMsg is the generic {type, value} form of a message.
type RawMsg struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Msg constructs the typed variant of the raw message.
func (m RawMsg) Msg() (Msg, error) {
	return NewMsg(m.Type, m.Value)
}

// NewMsg constructs the message variant named by tag from its raw JSON
// value. The tag must name one of the known kinds; whether the fields are
// acceptable is decided by the variant's own validation, not here.
func NewMsg(tag string, value json.RawMessage) (Msg, error) {
	switch MsgTypeByTag(tag) {
	case MsgTypeSend:
		return decodeMsg(new(MsgSend), value)
	case MsgTypeMultiSend:
		return decodeMsg(new(MsgMultiSend), value)
	case MsgTypeDelegate:
		return decodeMsg(new(MsgDelegate), value)
	case MsgTypeUndelegate:
		return decodeMsg(new(MsgUndelegate), value)
	case MsgTypeBeginRedelegate:
		return decodeMsg(new(MsgBeginRedelegate), value)
	case MsgTypeWithdrawDelegatorReward:
		return decodeMsg(new(MsgWithdrawDelegatorReward), value)
	case MsgTypeWithdrawValidatorCommission:
		return decodeMsg(new(MsgWithdrawValidatorCommission), value)
	case MsgTypeIssueToken:
		return decodeMsg(new(MsgIssueToken), value)
	case MsgTypeMintToken:
		return decodeMsg(new(MsgMintToken), value)
	case MsgTypeEditToken:
		return decodeMsg(new(MsgEditToken), value)
	case MsgTypeTransferTokenOwner:
		return decodeMsg(new(MsgTransferTokenOwner), value)
	case MsgTypeIssueDenom:
		return decodeMsg(new(MsgIssueDenom), value)
	case MsgTypeMintNFT:
		return decodeMsg(new(MsgMintNFT), value)
	case MsgTypeEditNFT:
		return decodeMsg(new(MsgEditNFT), value)
	case MsgTypeTransferNFT:
		return decodeMsg(new(MsgTransferNFT), value)
	case MsgTypeBurnNFT:
		return decodeMsg(new(MsgBurnNFT), value)
	default:
		return nil, errors.UnknownType.WithFormat("unrecognized message type %q", tag)
	}
}

func decodeMsg[M Msg](m M, value json.RawMessage) (Msg, error) {
	if len(value) > 0 {
		if err := json.Unmarshal(value, m); err != nil {
			return nil, errors.EncodingError.WithCauseAndFormat(err, "decode %v", m.Type())
		}
	}
	if err := m.ValidateBasic(); err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalMsg returns the canonical {type, value} JSON form of a message,
// with sorted keys. This form is both the sign-document entry and the wire
// form of the message.
func MarshalMsg(m Msg) ([]byte, error) {
	value, err := json.Marshal(m)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "encode %v", m.Type())
	}
	b, err := json.Marshal(RawMsg{Type: m.Type().String(), Value: value})
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "encode %v", m.Type())
	}
	return SortJSON(b)
}
