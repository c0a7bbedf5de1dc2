// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/cometbft/cometbft/crypto/tmhash"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// PubKey is a public key in its amino-style envelope.
type PubKey struct {
	Type  string `json:"type"`
	Value []byte `json:"value"`
}

// Empty returns true if no key is present.
func (pk PubKey) Empty() bool { return pk.Type == "" && len(pk.Value) == 0 }

// StdSignature is a signature over a sign document, together with the public
// key and the nonce pair in effect when it was produced.
type StdSignature struct {
	PubKey        PubKey `json:"pub_key"`
	Signature     []byte `json:"signature,omitempty"`
	AccountNumber uint64 `json:"account_number,string"`
	Sequence      uint64 `json:"sequence,string"`
}

// StdTx is the transaction envelope: an ordered message list, a fee, a memo,
// and at most one signature.
type StdTx struct {
	Msgs       []Msg
	Fee        StdFee
	Signatures []StdSignature
	Memo       string
}

// NewStdTx wraps messages with a fee and memo into an unsigned envelope.
func NewStdTx(msgs []Msg, fee StdFee, memo string) *StdTx {
	return &StdTx{Msgs: msgs, Fee: fee, Memo: memo}
}

// PubKey returns the attached public key, if one has been attached.
func (tx *StdTx) PubKey() (PubKey, bool) {
	if len(tx.Signatures) == 0 || tx.Signatures[0].PubKey.Empty() {
		return PubKey{}, false
	}
	return tx.Signatures[0].PubKey, true
}

// IsSigned returns true if the envelope carries a complete signature.
func (tx *StdTx) IsSigned() bool {
	return len(tx.Signatures) > 0 && len(tx.Signatures[0].Signature) > 0
}

// WithPubKey returns a copy of the transaction with the public key and nonce
// attached as an incomplete signature slot. The receiver is not modified.
func (tx *StdTx) WithPubKey(pk PubKey, nonce Nonce) *StdTx {
	c := tx.clone()
	c.Signatures = []StdSignature{{
		PubKey:        pk,
		AccountNumber: nonce.AccountNumber,
		Sequence:      nonce.Sequence,
	}}
	return c
}

// WithSignature returns a copy of the transaction carrying exactly the given
// signature. The receiver is not modified, so two signing attempts can never
// race on one instance.
func (tx *StdTx) WithSignature(sig StdSignature) *StdTx {
	c := tx.clone()
	c.Signatures = []StdSignature{sig}
	return c
}

func (tx *StdTx) clone() *StdTx {
	c := *tx
	c.Msgs = append([]Msg(nil), tx.Msgs...)
	c.Signatures = append([]StdSignature(nil), tx.Signatures...)
	return &c
}

type stdTxJSON struct {
	Msgs       []json.RawMessage `json:"msg"`
	Fee        StdFee            `json:"fee"`
	Signatures []StdSignature    `json:"signatures"`
	Memo       string            `json:"memo"`
}

func (tx StdTx) MarshalJSON() ([]byte, error) {
	msgs := make([]json.RawMessage, len(tx.Msgs))
	for i, m := range tx.Msgs {
		b, err := MarshalMsg(m)
		if err != nil {
			return nil, err
		}
		msgs[i] = b
	}
	return json.Marshal(stdTxJSON{
		Msgs:       msgs,
		Fee:        tx.Fee,
		Signatures: tx.Signatures,
		Memo:       tx.Memo,
	})
}

func (tx *StdTx) UnmarshalJSON(b []byte) error {
	var j struct {
		Msgs       []RawMsg       `json:"msg"`
		Fee        StdFee         `json:"fee"`
		Signatures []StdSignature `json:"signatures"`
		Memo       string         `json:"memo"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}

	msgs := make([]Msg, len(j.Msgs))
	for i, raw := range j.Msgs {
		m, err := raw.Msg()
		if err != nil {
			return err
		}
		msgs[i] = m
	}

	tx.Msgs = msgs
	tx.Fee = j.Fee
	tx.Signatures = j.Signatures
	tx.Memo = j.Memo
	return nil
}

// MarshalTx returns the canonical wire bytes of a transaction: the sorted
// JSON form of the envelope. Broadcast consumes only these bytes.
func MarshalTx(tx *StdTx) ([]byte, error) {
	b, err := json.Marshal(tx)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "encode tx")
	}
	return SortJSON(b)
}

// UnmarshalTx decodes a transaction from its canonical wire bytes.
func UnmarshalTx(b []byte) (*StdTx, error) {
	tx := new(StdTx)
	if err := json.Unmarshal(b, tx); err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "decode tx")
	}
	return tx, nil
}

// TxHash returns the upper-hex hash a node reports for the given serialized
// transaction.
func TxHash(txBytes []byte) string {
	return strings.ToUpper(hex.EncodeToString(tmhash.Sum(txBytes)))
}
