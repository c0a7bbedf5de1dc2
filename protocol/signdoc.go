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

// StdSignDoc is the canonical signing document. It exists only as signing
// input; what is signed must be byte-identical to what the chain
// reconstructs, or on-chain signature verification fails.
type StdSignDoc struct {
	AccountNumber uint64            `json:"account_number,string"`
	ChainID       string            `json:"chain_id"`
	Fee           json.RawMessage   `json:"fee"`
	Memo          string            `json:"memo"`
	Msgs          []json.RawMessage `json:"msgs"`
	Sequence      uint64            `json:"sequence,string"`
}

// NewSignDoc builds the sign document for a transaction from its resolved
// nonce, chain id, fee, memo, and messages.
func NewSignDoc(nonce Nonce, chainID string, fee StdFee, memo string, msgs []Msg) (*StdSignDoc, error) {
	if chainID == "" {
		return nil, errors.BadRequest.With("chain id is required")
	}

	feeBytes, err := json.Marshal(fee)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "encode fee")
	}

	msgBytes := make([]json.RawMessage, len(msgs))
	for i, m := range msgs {
		b, err := MarshalMsg(m)
		if err != nil {
			return nil, err
		}
		msgBytes[i] = b
	}

	return &StdSignDoc{
		AccountNumber: nonce.AccountNumber,
		ChainID:       chainID,
		Fee:           feeBytes,
		Memo:          memo,
		Msgs:          msgBytes,
		Sequence:      nonce.Sequence,
	}, nil
}

// Bytes returns the canonical byte form of the document: JSON with
// lexicographically sorted keys and no insignificant whitespace.
func (doc *StdSignDoc) Bytes() ([]byte, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "encode sign doc")
	}
	return SortJSON(b)
}

// SortJSON canonicalizes a JSON document by re-marshaling it with sorted
// object keys at every level.
func SortJSON(b []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}
	return out, nil
}

// MustSortJSON is SortJSON for bytes already known to be valid JSON.
func MustSortJSON(b []byte) []byte {
	out, err := SortJSON(b)
	if err != nil {
		panic(err)
	}
	return out
}
