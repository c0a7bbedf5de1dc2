// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import (
	"github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

const (
	// mnemonicEntropy is the entropy used for new mnemonics, in bits. 256
	// bits yields a 24-word phrase.
	mnemonicEntropy = 256

	bip44Purpose  = 44
	bip44CoinType = 118
)

// NewMnemonic generates a fresh BIP39 mnemonic phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropy)
	if err != nil {
		return "", errors.InternalError.Wrap(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.InternalError.Wrap(err)
	}
	return mnemonic, nil
}

// Generate creates a key under a fresh mnemonic and returns both. The
// mnemonic is the only way to recover the key; the caller is responsible for
// keeping it safe.
func Generate(name string, algo protocol.PubKeyAlgo) (KeyInfo, string, error) {
	mnemonic, err := NewMnemonic()
	if err != nil {
		return KeyInfo{}, "", err
	}
	info, err := FromMnemonic(name, mnemonic, algo)
	if err != nil {
		return KeyInfo{}, "", err
	}
	return info, mnemonic, nil
}

// FromMnemonic recovers a key from an existing mnemonic. Derivation is
// deterministic: the same mnemonic and algorithm always produce the same key.
//
// Secp256k1 keys follow the BIP44 path 44'/118'/0'/0/0. Ed25519 keys are
// generated from the head of the BIP39 seed.
func FromMnemonic(name, mnemonic string, algo protocol.PubKeyAlgo) (KeyInfo, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return KeyInfo{}, errors.BadRequest.With("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")

	switch algo {
	case protocol.Ed25519:
		priv := ed25519.GenPrivKeyFromSecret(seed[:32])
		return KeyInfo{Name: name, Algo: algo, PrivKey: priv.Bytes()}, nil

	case protocol.Secp256k1, protocol.UnknownPubKeyAlgo:
		priv, err := deriveSecp256k1(seed)
		if err != nil {
			return KeyInfo{}, err
		}
		return KeyInfo{Name: name, Algo: protocol.Secp256k1, PrivKey: priv}, nil

	default:
		return KeyInfo{}, errors.BadRequest.WithFormat("unknown public key algorithm %v", algo)
	}
}

func deriveSecp256k1(seed []byte) ([]byte, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.InternalError.Wrap(err)
	}

	path := []uint32{
		bip44Purpose + bip32.FirstHardenedChild,
		bip44CoinType + bip32.FirstHardenedChild,
		0 + bip32.FirstHardenedChild,
		0,
		0,
	}
	for _, i := range path {
		key, err = key.NewChildKey(i)
		if err != nil {
			return nil, errors.InternalError.Wrap(err)
		}
	}
	return key.Key, nil
}
