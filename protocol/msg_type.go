// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"
	"fmt"
)

// MsgType identifies one of the known message kinds. The set is closed:
// adding a kind means adding a constant, a case in every switch below, and a
// variant type.
type MsgType uint8

const (
	MsgTypeUnknown MsgType = iota
	MsgTypeSend
	MsgTypeMultiSend
	MsgTypeDelegate
	MsgTypeUndelegate
	MsgTypeBeginRedelegate
	MsgTypeWithdrawDelegatorReward
	MsgTypeWithdrawValidatorCommission
	MsgTypeIssueToken
	MsgTypeMintToken
	MsgTypeEditToken
	MsgTypeTransferTokenOwner
	MsgTypeIssueDenom
	MsgTypeMintNFT
	MsgTypeEditNFT
	MsgTypeTransferNFT
	MsgTypeBurnNFT
)

// MsgTypeByTag returns the message type for a wire tag.
func MsgTypeByTag(s string) MsgType {
	switch s {
	case "meridian/bank/Send":
		return MsgTypeSend
	case "meridian/bank/MultiSend":
		return MsgTypeMultiSend
	case "meridian/staking/Delegate":
		return MsgTypeDelegate
	case "meridian/staking/Undelegate":
		return MsgTypeUndelegate
	case "meridian/staking/Redelegate":
		return MsgTypeBeginRedelegate
	case "meridian/distr/WithdrawReward":
		return MsgTypeWithdrawDelegatorReward
	case "meridian/distr/WithdrawCommission":
		return MsgTypeWithdrawValidatorCommission
	case "meridian/token/Issue":
		return MsgTypeIssueToken
	case "meridian/token/Mint":
		return MsgTypeMintToken
	case "meridian/token/Edit":
		return MsgTypeEditToken
	case "meridian/token/TransferOwner":
		return MsgTypeTransferTokenOwner
	case "meridian/nft/IssueDenom":
		return MsgTypeIssueDenom
	case "meridian/nft/Mint":
		return MsgTypeMintNFT
	case "meridian/nft/Edit":
		return MsgTypeEditNFT
	case "meridian/nft/Transfer":
		return MsgTypeTransferNFT
	case "meridian/nft/Burn":
		return MsgTypeBurnNFT
	default:
		return MsgTypeUnknown
	}
}

// String returns the wire tag of the message type.
func (t MsgType) String() string {
	switch t {
	case MsgTypeSend:
		return "meridian/bank/Send"
	case MsgTypeMultiSend:
		return "meridian/bank/MultiSend"
	case MsgTypeDelegate:
		return "meridian/staking/Delegate"
	case MsgTypeUndelegate:
		return "meridian/staking/Undelegate"
	case MsgTypeBeginRedelegate:
		return "meridian/staking/Redelegate"
	case MsgTypeWithdrawDelegatorReward:
		return "meridian/distr/WithdrawReward"
	case MsgTypeWithdrawValidatorCommission:
		return "meridian/distr/WithdrawCommission"
	case MsgTypeIssueToken:
		return "meridian/token/Issue"
	case MsgTypeMintToken:
		return "meridian/token/Mint"
	case MsgTypeEditToken:
		return "meridian/token/Edit"
	case MsgTypeTransferTokenOwner:
		return "meridian/token/TransferOwner"
	case MsgTypeIssueDenom:
		return "meridian/nft/IssueDenom"
	case MsgTypeMintNFT:
		return "meridian/nft/Mint"
	case MsgTypeEditNFT:
		return "meridian/nft/Edit"
	case MsgTypeTransferNFT:
		return "meridian/nft/Transfer"
	case MsgTypeBurnNFT:
		return "meridian/nft/Burn"
	default:
		return fmt.Sprintf("MsgType:%d", uint8(t))
	}
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MsgType) UnmarshalJSON(b []byte) error {
	var s *string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	if s == nil {
		*t = MsgTypeUnknown
		return nil
	}

	*t = MsgTypeByTag(*s)
	if *t == MsgTypeUnknown {
		return fmt.Errorf("invalid message type: %q", *s)
	}
	return nil
}
