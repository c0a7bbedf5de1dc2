// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package keys defines the key-store port consumed by the signing pipeline
// and provides mnemonic-based key creation and recovery.
//
// A KeyDAO hands out decrypted key material; how keys are persisted and
// protected at rest is the store's business. The in-memory implementation in
// this package does a plain password match and is intended for tests and
// tooling.
package keys

import (
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

// KeyInfo is the decrypted key material held by a store.
type KeyInfo struct {
	// Name is the local name the key is filed under.
	Name string `json:"name"`

	// Algo selects the signature algorithm the key belongs to.
	Algo protocol.PubKeyAlgo `json:"algo"`

	// PrivKey is the raw private key. 32 bytes for secp256k1, 64 for
	// ed25519.
	PrivKey []byte `json:"priv_key"`
}

// KeyDAO is the key-store port. Implementations must be safe for concurrent
// use.
//
// Read returns errors.NotFound when no key is filed under name, and
// errors.Unauthenticated when the password does not grant access to it.
type KeyDAO interface {
	Write(name, password string, info KeyInfo) error
	Read(name, password string) (KeyInfo, error)
	Delete(name, password string) error
	Has(name string) bool
}
