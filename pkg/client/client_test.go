// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/pkg/keys"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcHandler func(params json.RawMessage) (interface{}, *rpcError)

// testNode is a fake node: an HTTP server answering JSON-RPC requests from a
// per-method handler table.
type testNode struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	handlers map[string]rpcHandler
	calls    map[string]int
}

func newTestNode(t *testing.T) *testNode {
	n := &testNode{
		t:        t,
		handlers: map[string]rpcHandler{},
		calls:    map[string]int{},
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.serve))
	t.Cleanup(n.srv.Close)
	return n
}

func (n *testNode) handle(method string, fn rpcHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = fn
}

func (n *testNode) callCount(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

func (n *testNode) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	fn := n.handlers[req.Method]
	n.mu.Unlock()

	type response struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  interface{}     `json:"result,omitempty"`
		Error   *rpcError       `json:"error,omitempty"`
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	if fn == nil {
		_ = enc.Encode(response{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32601, Message: "Method not found"}})
		return
	}

	result, rpcErr := fn(req.Params)
	if rpcErr != nil {
		_ = enc.Encode(response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr})
		return
	}
	_ = enc.Encode(response{JSONRPC: "2.0", ID: req.ID, Result: result})
}

// handleAccount wires the account sub-queries with fixed chain state.
func (n *testNode) handleAccount(acct map[string]interface{}, balances interface{}) {
	n.handle(methodAuthAccount, func(json.RawMessage) (interface{}, *rpcError) {
		return map[string]interface{}{"account": acct}, nil
	})
	n.handle(methodBankBalances, func(json.RawMessage) (interface{}, *rpcError) {
		return map[string]interface{}{"balances": balances}, nil
	})
}

func testStore(t testing.TB) keys.KeyDAO {
	t.Helper()
	store := keys.NewMemory()
	info, err := keys.FromMnemonic("alice", testMnemonic, protocol.Secp256k1)
	require.NoError(t, err)
	require.NoError(t, store.Write("alice", "passw0rd", info))
	return store
}

func testClient(t *testing.T, node *testNode) *Client {
	t.Helper()
	c, err := New(Config{Server: node.srv.URL, ChainID: "test-1", Keys: testStore(t)})
	require.NoError(t, err)
	return c
}

func testSendMsg(t testing.TB) []protocol.RawMsg {
	t.Helper()
	value, err := json.Marshal(map[string]interface{}{
		"from_address": protocol.AccAddress(make20(1)).String(),
		"to_address":   protocol.AccAddress(make20(2)).String(),
		"amount":       []map[string]string{{"denom": "stake", "amount": "10"}},
	})
	require.NoError(t, err)
	return []protocol.RawMsg{{Type: "meridian/bank/Send", Value: value}}
}

func make20(b byte) []byte {
	out := make([]byte, protocol.AddrLen)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestNew(t *testing.T) {
	store := testStore(t)

	cases := map[string]Config{
		"MissingChainID": {Keys: store},
		"MissingKeys":    {ChainID: "test-1"},
		"NegativeTimeout": {
			ChainID: "test-1",
			Keys:    store,
			Timeout: -1,
		},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg)
			require.Error(t, err)
			require.Equal(t, errors.Misconfigured, errors.Code(err))
		})
	}

	t.Run("Defaults", func(t *testing.T) {
		c, err := New(Config{ChainID: "test-1", Keys: store})
		require.NoError(t, err)
		assert.Equal(t, ServerDefault, c.server)
		assert.Equal(t, TimeoutDefault, c.Timeout)
		assert.Equal(t, "test-1", c.ChainID())
	})
}

func TestRequestNetworkError(t *testing.T) {
	c, err := New(Config{Server: "http://127.0.0.1:1", ChainID: "test-1", Keys: testStore(t)})
	require.NoError(t, err)

	_, err = c.QueryAccount(context.Background(), protocol.AccAddress(make20(1)))
	require.Error(t, err)
	require.Equal(t, errors.NetworkError, errors.Code(err))
}

func TestBuildAndSend(t *testing.T) {
	node := newTestNode(t)
	node.handleAccount(
		map[string]interface{}{"account_number": "4", "sequence": 11},
		[]map[string]string{{"denom": "stake", "amount": "100"}},
	)

	var receivedTx []byte
	node.handle("broadcast_tx_sync", func(params json.RawMessage) (interface{}, *rpcError) {
		var p struct {
			Tx []byte `json:"tx"`
		}
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, &rpcError{Code: -32602, Message: err.Error()}
		}
		receivedTx = p.Tx
		return map[string]interface{}{"code": 0, "hash": "CAFEBABE", "log": ""}, nil
	})

	c := testClient(t, node)
	baseTx := protocol.BaseTx{From: "alice", Password: "passw0rd", Memo: "e2e"}

	result, err := c.BuildAndSend(context.Background(), testSendMsg(t), baseTx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hash)
	assert.Equal(t, "CAFEBABE", result.Hash)

	// The node received canonical bytes carrying exactly one signature.
	require.NotEmpty(t, receivedTx)
	tx, err := protocol.UnmarshalTx(receivedTx)
	require.NoError(t, err)
	require.True(t, tx.IsSigned())
	require.Len(t, tx.Signatures, 1)
	assert.Equal(t, uint64(4), tx.Signatures[0].AccountNumber)
	assert.Equal(t, uint64(11), tx.Signatures[0].Sequence)
	assert.Equal(t, "e2e", tx.Memo)

	// Both resolver sub-queries ran, once each.
	assert.Equal(t, 1, node.callCount(methodAuthAccount))
	assert.Equal(t, 1, node.callCount(methodBankBalances))
}

func TestBuildAndSendFailsEarly(t *testing.T) {
	node := newTestNode(t)
	c := testClient(t, node)

	t.Run("BadMessage", func(t *testing.T) {
		msgs := []protocol.RawMsg{{Type: "meridian/bank/Steal", Value: []byte(`{}`)}}
		_, err := c.BuildAndSend(context.Background(), msgs, protocol.BaseTx{From: "alice", Password: "passw0rd"})
		require.Error(t, err)
		require.Equal(t, errors.UnknownType, errors.Code(err))
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		_, err := c.BuildAndSend(context.Background(), testSendMsg(t), protocol.BaseTx{})
		require.Error(t, err)
		require.Equal(t, errors.BadRequest, errors.Code(err))
	})

	// A failed build or sign never reaches the node.
	assert.Zero(t, node.callCount("broadcast_tx_sync"))
}

func TestSignTxPinnedNonce(t *testing.T) {
	node := newTestNode(t)
	c := testClient(t, node)

	tx, err := c.BuildTx(testSendMsg(t), protocol.BaseTx{})
	require.NoError(t, err)

	n4, n9 := uint64(4), uint64(9)
	signed, err := c.SignTx(context.Background(), tx, protocol.BaseTx{
		From:          "alice",
		Password:      "passw0rd",
		AccountNumber: &n4,
		Sequence:      &n9,
	})
	require.NoError(t, err)
	require.True(t, signed.IsSigned())

	// Resolution was skipped entirely.
	assert.Zero(t, node.callCount(methodAuthAccount))
	assert.Zero(t, node.callCount(methodBankBalances))
}

func TestSignBytesOffline(t *testing.T) {
	node := newTestNode(t)
	c := testClient(t, node)

	doc := []byte(`{"account_number":"1","chain_id":"test-1","sequence":"2"}`)
	sig, pk, err := c.SignBytes(doc, "alice", "passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, sig)
	require.False(t, pk.Empty())

	// Offline means offline.
	assert.Empty(t, node.calls)
}
