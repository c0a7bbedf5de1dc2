// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package signing

import (
	"crypto/ed25519"

	"github.com/cometbft/cometbft/crypto"
	tmed25519 "github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/cometbft/cometbft/crypto/secp256k1"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

// KeyFromBytes returns the concrete private key for raw key material under
// the given algorithm. Invalid material is an authentication failure: the
// store handed out something that cannot sign.
func KeyFromBytes(algo protocol.PubKeyAlgo, b []byte) (crypto.PrivKey, error) {
	switch algo {
	case protocol.Ed25519:
		if len(b) != ed25519.PrivateKeySize {
			return nil, errors.Unauthenticated.WithFormat("invalid ed25519 key: want %d bytes, got %d", ed25519.PrivateKeySize, len(b))
		}
		return tmed25519.PrivKey(b), nil

	case protocol.Secp256k1, protocol.UnknownPubKeyAlgo:
		if len(b) != secp256k1.PrivKeySize {
			return nil, errors.Unauthenticated.WithFormat("invalid secp256k1 key: want %d bytes, got %d", secp256k1.PrivKeySize, len(b))
		}
		return secp256k1.PrivKey(b), nil

	default:
		return nil, errors.BadRequest.WithFormat("unknown public key algorithm %v", algo)
	}
}

// PubKeyFor returns the wire form of the private key's public key.
func PubKeyFor(algo protocol.PubKeyAlgo, priv crypto.PrivKey) protocol.PubKey {
	if algo == protocol.UnknownPubKeyAlgo {
		algo = protocol.Secp256k1
	}
	return protocol.PubKey{
		Type:  algo.PubKeyType(),
		Value: priv.PubKey().Bytes(),
	}
}

// Address returns the account address of a wire-form public key: for
// secp256k1, RIPEMD160(SHA256(pub)); for ed25519, SHA256(pub) truncated to
// 20 bytes.
func Address(pk protocol.PubKey) (protocol.AccAddress, error) {
	switch pk.Type {
	case protocol.PubKeyTypeSecp256k1:
		if len(pk.Value) != secp256k1.PubKeySize {
			return nil, errors.BadRequest.WithFormat("invalid secp256k1 public key: want %d bytes, got %d", secp256k1.PubKeySize, len(pk.Value))
		}
		return protocol.AccAddress(secp256k1.PubKey(pk.Value).Address()), nil

	case protocol.PubKeyTypeEd25519:
		if len(pk.Value) != tmed25519.PubKeySize {
			return nil, errors.BadRequest.WithFormat("invalid ed25519 public key: want %d bytes, got %d", tmed25519.PubKeySize, len(pk.Value))
		}
		return protocol.AccAddress(tmed25519.PubKey(pk.Value).Address()), nil

	default:
		return nil, errors.UnknownType.WithFormat("unrecognized public key type %q", pk.Type)
	}
}

// Verify reports whether sig is a valid signature over msg by pk.
func Verify(pk protocol.PubKey, msg, sig []byte) bool {
	switch pk.Type {
	case protocol.PubKeyTypeSecp256k1:
		if len(pk.Value) != secp256k1.PubKeySize {
			return false
		}
		return secp256k1.PubKey(pk.Value).VerifySignature(msg, sig)

	case protocol.PubKeyTypeEd25519:
		if len(pk.Value) != tmed25519.PubKeySize {
			return false
		}
		return tmed25519.PubKey(pk.Value).VerifySignature(msg, sig)

	default:
		return false
	}
}
