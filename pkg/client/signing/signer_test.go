// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package signing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/pkg/keys"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func ptr[T any](v T) *T { return &v }

type fakeResolver struct {
	acct  *protocol.BaseAccount
	err   error
	calls int
}

func (r *fakeResolver) QueryAccount(_ context.Context, _ protocol.AccAddress) (*protocol.BaseAccount, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.acct, nil
}

func testStore(t testing.TB) keys.KeyDAO {
	t.Helper()
	store := keys.NewMemory()
	for name, algo := range map[string]protocol.PubKeyAlgo{
		"alice":    protocol.Secp256k1,
		"ed-alice": protocol.Ed25519,
	} {
		info, err := keys.FromMnemonic(name, testMnemonic, algo)
		require.NoError(t, err)
		require.NoError(t, store.Write(name, "passw0rd", info))
	}
	return store
}

func testTx(t testing.TB) *protocol.StdTx {
	t.Helper()
	coins, err := protocol.ParseCoins("10stake")
	require.NoError(t, err)
	msg := &protocol.MsgSend{
		FromAddress: protocol.AccAddress(bytes.Repeat([]byte{1}, protocol.AddrLen)),
		ToAddress:   protocol.AccAddress(bytes.Repeat([]byte{2}, protocol.AddrLen)),
		Amount:      coins,
	}
	baseTx := protocol.BaseTx{Memo: "a memo"}
	return protocol.NewStdTx([]protocol.Msg{msg}, baseTx.StdFee(), baseTx.Memo)
}

func TestSign(t *testing.T) {
	for _, name := range []string{"alice", "ed-alice"} {
		t.Run(name, func(t *testing.T) {
			resolver := &fakeResolver{acct: &protocol.BaseAccount{AccountNumber: 7, Sequence: 42}}
			s := &Signer{Keys: testStore(t), Resolver: resolver}
			tx := testTx(t)
			baseTx := protocol.BaseTx{ChainID: "test-1", From: name, Password: "passw0rd"}

			signed, err := s.Sign(context.Background(), tx, baseTx)
			require.NoError(t, err)
			require.Len(t, signed.Signatures, 1)
			require.Equal(t, 1, resolver.calls)

			sig := signed.Signatures[0]
			assert.Equal(t, uint64(7), sig.AccountNumber)
			assert.Equal(t, uint64(42), sig.Sequence)
			assert.False(t, sig.PubKey.Empty())

			// The signature must verify against the canonical sign doc.
			doc, err := protocol.NewSignDoc(protocol.Nonce{AccountNumber: 7, Sequence: 42}, "test-1", tx.Fee, tx.Memo, tx.Msgs)
			require.NoError(t, err)
			docBytes, err := doc.Bytes()
			require.NoError(t, err)
			require.True(t, Verify(sig.PubKey, docBytes, sig.Signature))

			// The input transaction is untouched.
			require.Empty(t, tx.Signatures)
		})
	}
}

func TestSignErrors(t *testing.T) {
	resolver := &fakeResolver{acct: &protocol.BaseAccount{}}
	s := &Signer{Keys: testStore(t), Resolver: resolver}

	cases := map[string]struct {
		baseTx protocol.BaseTx
		expect errors.Status
	}{
		"MissingFrom": {
			baseTx: protocol.BaseTx{ChainID: "test-1", Password: "passw0rd"},
			expect: errors.BadRequest,
		},
		"MissingPassword": {
			baseTx: protocol.BaseTx{ChainID: "test-1", From: "alice"},
			expect: errors.BadRequest,
		},
		"UnknownKey": {
			baseTx: protocol.BaseTx{ChainID: "test-1", From: "bob", Password: "passw0rd"},
			expect: errors.NotFound,
		},
		"WrongPassword": {
			baseTx: protocol.BaseTx{ChainID: "test-1", From: "alice", Password: "hunter2"},
			expect: errors.Unauthenticated,
		},
		"MissingChainID": {
			baseTx: protocol.BaseTx{From: "alice", Password: "passw0rd"},
			expect: errors.BadRequest,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Sign(context.Background(), testTx(t), c.baseTx)
			require.Error(t, err)
			require.Equal(t, c.expect, errors.Code(err))
		})
	}

	t.Run("NilTx", func(t *testing.T) {
		_, err := s.Sign(context.Background(), nil, protocol.BaseTx{ChainID: "test-1", From: "alice", Password: "passw0rd"})
		require.Error(t, err)
		require.Equal(t, errors.BadRequest, errors.Code(err))
	})

	t.Run("ResolverFailure", func(t *testing.T) {
		s := &Signer{
			Keys:     testStore(t),
			Resolver: &fakeResolver{err: errors.NetworkError.With("connection refused")},
		}
		_, err := s.Sign(context.Background(), testTx(t), protocol.BaseTx{ChainID: "test-1", From: "alice", Password: "passw0rd"})
		require.Error(t, err)
		require.Equal(t, errors.NetworkError, errors.Code(err))
	})
}

func TestSignNonce(t *testing.T) {
	t.Run("Pinned", func(t *testing.T) {
		resolver := &fakeResolver{acct: &protocol.BaseAccount{AccountNumber: 7, Sequence: 42}}
		s := &Signer{Keys: testStore(t), Resolver: resolver}
		baseTx := protocol.BaseTx{
			ChainID:       "test-1",
			From:          "alice",
			Password:      "passw0rd",
			AccountNumber: ptr(uint64(5)),
			Sequence:      ptr(uint64(9)),
		}

		signed, err := s.Sign(context.Background(), testTx(t), baseTx)
		require.NoError(t, err)
		require.Zero(t, resolver.calls, "pinned nonce must not hit the chain")
		assert.Equal(t, uint64(5), signed.Signatures[0].AccountNumber)
		assert.Equal(t, uint64(9), signed.Signatures[0].Sequence)
	})

	t.Run("PartialPinFallsBack", func(t *testing.T) {
		resolver := &fakeResolver{acct: &protocol.BaseAccount{AccountNumber: 7, Sequence: 42}}
		s := &Signer{Keys: testStore(t), Resolver: resolver}
		baseTx := protocol.BaseTx{
			ChainID:       "test-1",
			From:          "alice",
			Password:      "passw0rd",
			AccountNumber: ptr(uint64(5)),
		}

		signed, err := s.Sign(context.Background(), testTx(t), baseTx)
		require.NoError(t, err)
		require.Equal(t, 1, resolver.calls)
		// Both halves come from the chain, not a mix.
		assert.Equal(t, uint64(7), signed.Signatures[0].AccountNumber)
		assert.Equal(t, uint64(42), signed.Signatures[0].Sequence)
	})
}

func TestSignKeepsAttachedPubKey(t *testing.T) {
	s := &Signer{Keys: testStore(t), Resolver: &fakeResolver{acct: &protocol.BaseAccount{}}}
	foreign := protocol.PubKey{Type: protocol.PubKeyTypeSecp256k1, Value: bytes.Repeat([]byte{3}, 33)}
	tx := testTx(t).WithPubKey(foreign, protocol.Nonce{})

	signed, err := s.Sign(context.Background(), tx, protocol.BaseTx{ChainID: "test-1", From: "alice", Password: "passw0rd"})
	require.NoError(t, err)
	require.Len(t, signed.Signatures, 1)
	assert.Equal(t, foreign, signed.Signatures[0].PubKey, "attached public key must not be re-derived")
}

func TestSignBytes(t *testing.T) {
	s := &Signer{Keys: testStore(t)}
	doc := []byte(`{"account_number":"1","chain_id":"test-1","sequence":"2"}`)

	sig, pk, err := s.SignBytes(doc, "alice", "passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, sig)
	require.True(t, Verify(pk, doc, sig))
	require.False(t, Verify(pk, []byte("something else"), sig))

	t.Run("Errors", func(t *testing.T) {
		cases := map[string]struct {
			doc            []byte
			name, password string
			expect         errors.Status
		}{
			"EmptyDoc":      {nil, "alice", "passw0rd", errors.BadRequest},
			"MissingName":   {doc, "", "passw0rd", errors.BadRequest},
			"MissingPass":   {doc, "alice", "", errors.BadRequest},
			"UnknownKey":    {doc, "bob", "passw0rd", errors.NotFound},
			"WrongPassword": {doc, "alice", "hunter2", errors.Unauthenticated},
		}
		for name, c := range cases {
			t.Run(name, func(t *testing.T) {
				_, _, err := s.SignBytes(c.doc, c.name, c.password)
				require.Error(t, err)
				require.Equal(t, c.expect, errors.Code(err))
			})
		}
	})
}

func TestKeyFromBytes(t *testing.T) {
	cases := map[string]struct {
		algo   protocol.PubKeyAlgo
		size   int
		expect errors.Status
	}{
		"EmptySecp":   {protocol.Secp256k1, 0, errors.Unauthenticated},
		"ShortSecp":   {protocol.Secp256k1, 16, errors.Unauthenticated},
		"EmptyEd":     {protocol.Ed25519, 0, errors.Unauthenticated},
		"SeedOnlyEd":  {protocol.Ed25519, 32, errors.Unauthenticated},
		"UnknownAlgo": {protocol.PubKeyAlgo(99), 32, errors.BadRequest},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := KeyFromBytes(c.algo, make([]byte, c.size))
			require.Error(t, err)
			require.Equal(t, c.expect, errors.Code(err))
		})
	}
}

func TestAddress(t *testing.T) {
	for name, algo := range map[string]protocol.PubKeyAlgo{
		"Secp256k1": protocol.Secp256k1,
		"Ed25519":   protocol.Ed25519,
	} {
		t.Run(name, func(t *testing.T) {
			info, err := keys.FromMnemonic("alice", testMnemonic, algo)
			require.NoError(t, err)
			priv, err := KeyFromBytes(algo, info.PrivKey)
			require.NoError(t, err)

			addr, err := Address(PubKeyFor(algo, priv))
			require.NoError(t, err)
			require.Len(t, addr.Bytes(), protocol.AddrLen)

			// Round trips through the bech32 codec.
			parsed, err := protocol.AccAddressFromBech32(addr.String())
			require.NoError(t, err)
			require.Equal(t, addr, parsed)
		})
	}

	t.Run("UnknownType", func(t *testing.T) {
		_, err := Address(protocol.PubKey{Type: "tendermint/PubKeySr25519", Value: make([]byte, 32)})
		require.Error(t, err)
		require.Equal(t, errors.UnknownType, errors.Code(err))
	})
}
