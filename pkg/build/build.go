// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package build provides fluent builders for constructing Meridian
// transactions.
//
// Builders are value types. Each call returns a copy, so a partially
// constructed builder can be reused as a template. Argument errors are
// recorded instead of returned; the first call to Build reports them all.
package build

import (
	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

func Transaction() TransactionBuilder {
	return TransactionBuilder{}
}

// Tx assembles an unsigned transaction from generic {type, value} message
// pairs and base transaction parameters. Message order is preserved.
func Tx(msgs []protocol.RawMsg, baseTx protocol.BaseTx) (*protocol.StdTx, error) {
	if len(msgs) == 0 {
		return nil, errors.BadRequest.With("no messages")
	}
	typed := make([]protocol.Msg, len(msgs))
	for i, raw := range msgs {
		m, err := raw.Msg()
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
		typed[i] = m
	}
	return TxFromMsgs(typed, baseTx)
}

// TxFromMsgs assembles an unsigned transaction from already-constructed
// messages.
func TxFromMsgs(msgs []protocol.Msg, baseTx protocol.BaseTx) (*protocol.StdTx, error) {
	return Transaction().WithBaseTx(baseTx).WithMsg(msgs...).Build()
}
