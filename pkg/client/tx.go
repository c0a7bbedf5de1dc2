// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package client

import (
	"context"

	"gitlab.com/meridianhub/meridian-sdk/pkg/build"
	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

// withChainID fills in the client's chain id when the caller left it unset.
func (c *Client) withChainID(baseTx protocol.BaseTx) protocol.BaseTx {
	if baseTx.ChainID == "" {
		baseTx.ChainID = c.chainID
	}
	return baseTx
}

// BuildTx assembles an unsigned transaction from generic {type, value}
// message pairs and base transaction parameters.
func (c *Client) BuildTx(msgs []protocol.RawMsg, baseTx protocol.BaseTx) (*protocol.StdTx, error) {
	tx, err := build.Tx(msgs, c.withChainID(baseTx))
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return tx, nil
}

// SignTx signs a transaction, resolving the signer's nonce from the chain
// unless baseTx pins it. The input transaction is not modified.
func (c *Client) SignTx(ctx context.Context, tx *protocol.StdTx, baseTx protocol.BaseTx) (*protocol.StdTx, error) {
	return c.signer.Sign(ctx, tx, c.withChainID(baseTx))
}

// SignBytes signs an externally prepared sign document with a stored key.
// Nothing is resolved and nothing is broadcast.
func (c *Client) SignBytes(doc []byte, name, password string) ([]byte, protocol.PubKey, error) {
	return c.signer.SignBytes(doc, name, password)
}

// BuildAndSend runs the whole pipeline: build, sign, broadcast under the
// mode baseTx requests. A failure in any step returns that step's error and
// nothing is submitted.
func (c *Client) BuildAndSend(ctx context.Context, msgs []protocol.RawMsg, baseTx protocol.BaseTx) (*TxResult, error) {
	tx, err := c.BuildTx(msgs, baseTx)
	if err != nil {
		return nil, err
	}
	signed, err := c.SignTx(ctx, tx, baseTx)
	if err != nil {
		return nil, err
	}
	return c.Broadcast(ctx, signed, baseTx.BroadcastMode())
}
