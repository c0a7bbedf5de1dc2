// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// DefaultGas is the gas limit used when BaseTx leaves it unset.
const DefaultGas = 200000

// BaseTx carries the caller-supplied parameters of a transaction: signer
// credentials, fee, memo, nonce overrides, and broadcast mode. It is owned by
// the caller and never modified.
type BaseTx struct {
	ChainID       string        `json:"chain_id,omitempty"`
	From          string        `json:"from"`
	Password      string        `json:"password"`
	Gas           uint64        `json:"gas,omitempty"`
	Fee           Coins         `json:"fee,omitempty"`
	Memo          string        `json:"memo,omitempty"`
	AccountNumber *uint64       `json:"account_number,omitempty"`
	Sequence      *uint64       `json:"sequence,omitempty"`
	Algo          PubKeyAlgo    `json:"algo,omitempty"`
	Mode          BroadcastMode `json:"mode,omitempty"`
}

// Nonce is a resolved account number and sequence pair. Once a Nonce exists
// the optional fields of BaseTx must not be read again.
type Nonce struct {
	AccountNumber uint64 `json:"account_number,string"`
	Sequence      uint64 `json:"sequence,string"`
}

// Nonce returns the nonce pair if both optional fields are set. If either is
// missing the pair must be resolved from the chain instead.
func (tx BaseTx) Nonce() (Nonce, bool) {
	if tx.AccountNumber == nil || tx.Sequence == nil {
		return Nonce{}, false
	}
	return Nonce{AccountNumber: *tx.AccountNumber, Sequence: *tx.Sequence}, true
}

// StdFee derives the transaction fee from the gas and fee parameters,
// applying DefaultGas when unset.
func (tx BaseTx) StdFee() StdFee {
	gas := tx.Gas
	if gas == 0 {
		gas = DefaultGas
	}
	return NewStdFee(gas, tx.Fee)
}

// PubKeyAlgo returns the requested signature algorithm, defaulting to
// secp256k1.
func (tx BaseTx) PubKeyAlgo() PubKeyAlgo {
	if tx.Algo == UnknownPubKeyAlgo {
		return Secp256k1
	}
	return tx.Algo
}

// BroadcastMode returns the requested broadcast mode, defaulting to sync.
func (tx BaseTx) BroadcastMode() BroadcastMode {
	if tx.Mode == BroadcastUnset {
		return BroadcastSync
	}
	return tx.Mode
}

// StdFee is the fee of a transaction envelope.
type StdFee struct {
	Amount Coins  `json:"amount"`
	Gas    uint64 `json:"gas,string"`
}

// NewStdFee constructs a fee. A nil amount is normalized to an empty set so
// the canonical JSON form is always an array.
func NewStdFee(gas uint64, amount Coins) StdFee {
	if amount == nil {
		amount = Coins{}
	}
	return StdFee{Amount: amount, Gas: gas}
}
