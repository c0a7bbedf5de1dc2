// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

func TestSignDocBytes(t *testing.T) {
	msg := MsgSend{FromAddress: testAccAddr(1), ToAddress: testAccAddr(2), Amount: Coins{NewInt64Coin("stake", 10)}}
	fee := NewStdFee(200000, Coins{NewInt64Coin("stake", 2)})
	nonce := Nonce{AccountNumber: 5, Sequence: 2}

	doc, err := NewSignDoc(nonce, "test-1", fee, "a memo", []Msg{msg})
	require.NoError(t, err)

	b, err := doc.Bytes()
	require.NoError(t, err)

	want := fmt.Sprintf(
		`{"account_number":"5","chain_id":"test-1","fee":{"amount":[{"amount":"2","denom":"stake"}],"gas":"200000"},"memo":"a memo","msgs":[{"type":"meridian/bank/Send","value":{"amount":[{"amount":"10","denom":"stake"}],"from_address":%q,"to_address":%q}}],"sequence":"2"}`,
		msg.FromAddress, msg.ToAddress)
	require.Equal(t, want, string(b))
}

func TestSignDocDeterministic(t *testing.T) {
	msgs := []Msg{
		MsgSend{FromAddress: testAccAddr(1), ToAddress: testAccAddr(2), Amount: Coins{NewInt64Coin("stake", 10)}},
		MsgDelegate{DelegatorAddress: testAccAddr(1), ValidatorAddress: testValAddr(3), Amount: NewInt64Coin("stake", 7)},
	}
	fee := NewStdFee(100000, nil)
	nonce := Nonce{AccountNumber: 9, Sequence: 33}

	var prev []byte
	for i := 0; i < 16; i++ {
		doc, err := NewSignDoc(nonce, "test-1", fee, "", msgs)
		require.NoError(t, err)
		b, err := doc.Bytes()
		require.NoError(t, err)
		if prev != nil {
			require.Equal(t, prev, b)
		}
		prev = b
	}
}

func TestSignDocEmptyFee(t *testing.T) {
	doc, err := NewSignDoc(Nonce{}, "test-1", NewStdFee(DefaultGas, nil), "", nil)
	require.NoError(t, err)

	b, err := doc.Bytes()
	require.NoError(t, err)
	require.Equal(t,
		`{"account_number":"0","chain_id":"test-1","fee":{"amount":[],"gas":"200000"},"memo":"","msgs":[],"sequence":"0"}`,
		string(b))
}

func TestSignDocRequiresChainID(t *testing.T) {
	_, err := NewSignDoc(Nonce{}, "", NewStdFee(DefaultGas, nil), "", nil)
	require.Error(t, err)
	require.Equal(t, errors.BadRequest, errors.Code(err))
}

func TestSortJSON(t *testing.T) {
	in := []byte(`{"z":1,"a":{"y":[{"q":2,"b":3}],"c":"x"}}`)
	out, err := SortJSON(in)
	require.NoError(t, err)
	require.Equal(t, `{"a":{"c":"x","y":[{"b":3,"q":2}]},"z":1}`, string(out))

	_, err = SortJSON([]byte(`{`))
	require.Error(t, err)
	require.Equal(t, errors.EncodingError, errors.Code(err))

	require.Panics(t, func() { MustSortJSON([]byte(`{`)) })
}
