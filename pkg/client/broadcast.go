// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

// Phases of transaction processing that can reject a transaction.
const (
	PhaseCheck   = "check_tx"
	PhaseDeliver = "deliver_tx"
)

// TxResult is the outcome of a successful broadcast. Fields beyond the hash
// are populated only in commit mode, where the node reports execution.
type TxResult struct {
	Hash      string            `json:"hash"`
	Height    int64             `json:"height,omitempty"`
	GasWanted int64             `json:"gas_wanted,omitempty"`
	GasUsed   int64             `json:"gas_used,omitempty"`
	Info      string            `json:"info,omitempty"`
	Events    map[string]string `json:"events,omitempty"`
}

// ChainError is a non-zero response code from the chain, tagged with the
// phase that produced it. The transaction reached the node; the chain
// refused it.
type ChainError struct {
	Phase string
	Code  uint32
	Log   string
	Hash  string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %s", e.Phase, e.Code, e.Log)
}

// Unwrap maps the failing phase onto the status taxonomy so callers can
// dispatch on errors.Code.
func (e *ChainError) Unwrap() error {
	if e.Phase == PhaseDeliver {
		return errors.DeliverFailed
	}
	return errors.CheckFailed
}

type broadcastParams struct {
	Tx []byte `json:"tx"`
}

type resultBroadcastTx struct {
	Code uint32 `json:"code"`
	Data string `json:"data,omitempty"`
	Log  string `json:"log,omitempty"`
	Hash string `json:"hash"`
}

type resultBroadcastTxCommit struct {
	CheckTx   execResult  `json:"check_tx"`
	DeliverTx execResult  `json:"deliver_tx"`
	Hash      string      `json:"hash"`
	Height    json.Number `json:"height"`
}

type execResult struct {
	Code      uint32      `json:"code"`
	Log       string      `json:"log,omitempty"`
	Info      string      `json:"info,omitempty"`
	GasWanted json.Number `json:"gas_wanted,omitempty"`
	GasUsed   json.Number `json:"gas_used,omitempty"`
	Events    []abciEvent `json:"events,omitempty"`
}

type abciEvent struct {
	Type       string   `json:"type"`
	Attributes []kvPair `json:"attributes"`
}

type kvPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Broadcast serializes and submits a signed transaction. An unsigned
// transaction is rejected here, before any network traffic.
func (c *Client) Broadcast(ctx context.Context, tx *protocol.StdTx, mode protocol.BroadcastMode) (*TxResult, error) {
	if tx == nil {
		return nil, errors.BadRequest.With("missing transaction")
	}
	if !tx.IsSigned() {
		return nil, errors.BadRequest.With("transaction is not signed")
	}

	txBytes, err := protocol.MarshalTx(tx)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return c.BroadcastTx(ctx, txBytes, mode)
}

// BroadcastTx submits serialized transaction bytes under the given delivery
// mode. The bytes are submitted as-is; this entry cannot tell signed from
// unsigned.
func (c *Client) BroadcastTx(ctx context.Context, txBytes []byte, mode protocol.BroadcastMode) (*TxResult, error) {
	if len(txBytes) == 0 {
		return nil, errors.BadRequest.With("transaction bytes are empty")
	}
	if mode == protocol.BroadcastUnset {
		mode = protocol.BroadcastSync
	}
	method := mode.Method()
	if method == "" {
		return nil, errors.BadRequest.WithFormat("invalid broadcast mode %d", mode)
	}

	c.logger.Debug().Str("mode", mode.String()).Int("size", len(txBytes)).Msg("broadcast tx")

	params := broadcastParams{Tx: txBytes}
	var result *TxResult
	var err error
	switch mode {
	case protocol.BroadcastCommit:
		result, err = c.broadcastTxCommit(ctx, method, params)
	default:
		result, err = c.broadcastTxMempool(ctx, method, params)
	}
	if err != nil {
		return nil, err
	}

	if result.Hash == "" {
		// Some nodes omit the hash; it is a pure function of the bytes.
		result.Hash = protocol.TxHash(txBytes)
	}

	c.logger.Debug().Str("hash", result.Hash).Int64("height", result.Height).Msg("broadcast ok")
	return result, nil
}

// broadcastTxMempool handles the async and sync modes. Only the submission
// response's own code is checked.
func (c *Client) broadcastTxMempool(ctx context.Context, method string, params broadcastParams) (*TxResult, error) {
	var res resultBroadcastTx
	if err := c.Request(ctx, method, params, &res); err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, &ChainError{
			Phase: PhaseCheck,
			Code:  res.Code,
			Log:   res.Log,
			Hash:  res.Hash,
		}
	}
	return &TxResult{Hash: res.Hash}, nil
}

// broadcastTxCommit blocks through block inclusion. The check phase is
// inspected first; if it failed, the deliver fields are meaningless and are
// not read.
func (c *Client) broadcastTxCommit(ctx context.Context, method string, params broadcastParams) (*TxResult, error) {
	var res resultBroadcastTxCommit
	if err := c.Request(ctx, method, params, &res); err != nil {
		return nil, err
	}
	if res.CheckTx.Code != 0 {
		return nil, &ChainError{
			Phase: PhaseCheck,
			Code:  res.CheckTx.Code,
			Log:   res.CheckTx.Log,
			Hash:  res.Hash,
		}
	}
	if res.DeliverTx.Code != 0 {
		return nil, &ChainError{
			Phase: PhaseDeliver,
			Code:  res.DeliverTx.Code,
			Log:   res.DeliverTx.Log,
			Hash:  res.Hash,
		}
	}

	height, err := asInt64(res.Height)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "invalid height")
	}
	gasWanted, err := asInt64(res.DeliverTx.GasWanted)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "invalid gas wanted")
	}
	gasUsed, err := asInt64(res.DeliverTx.GasUsed)
	if err != nil {
		return nil, errors.EncodingError.WithCauseAndFormat(err, "invalid gas used")
	}

	return &TxResult{
		Hash:      res.Hash,
		Height:    height,
		GasWanted: gasWanted,
		GasUsed:   gasUsed,
		Info:      res.DeliverTx.Info,
		Events:    decodeEvents(res.DeliverTx.Events),
	}, nil
}

func asInt64(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	return n.Int64()
}

// decodeEvents flattens execution events into a tag mapping keyed by
// "type.key". Keys and values may arrive base64-encoded; anything that is
// not valid base64 is kept as-is.
func decodeEvents(events []abciEvent) map[string]string {
	if len(events) == 0 {
		return nil
	}
	tags := make(map[string]string)
	for _, event := range events {
		for _, attr := range event.Attributes {
			key := decodeTag(attr.Key)
			if event.Type != "" {
				key = event.Type + "." + key
			}
			tags[key] = decodeTag(attr.Value)
		}
	}
	return tags
}

func decodeTag(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(b)
}
