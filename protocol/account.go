// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// BaseAccount is the on-chain state of an account as reported by a node. An
// account with no prior history has account number and sequence zero.
type BaseAccount struct {
	Address       AccAddress `json:"address"`
	Coins         Coins      `json:"coins"`
	AccountNumber uint64     `json:"account_number,string"`
	Sequence      uint64     `json:"sequence,string"`
}

// Nonce returns the account's signing nonce pair.
func (a *BaseAccount) Nonce() Nonce {
	return Nonce{AccountNumber: a.AccountNumber, Sequence: a.Sequence}
}
