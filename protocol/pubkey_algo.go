// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PubKeyAlgo selects the signature algorithm for key derivation and signing.
type PubKeyAlgo uint8

const (
	UnknownPubKeyAlgo PubKeyAlgo = iota
	Secp256k1
	Ed25519
)

// Amino-style type tags for public keys in the signature envelope.
const (
	PubKeyTypeSecp256k1 = "tendermint/PubKeySecp256k1"
	PubKeyTypeEd25519   = "tendermint/PubKeyEd25519"
)

func PubKeyAlgoByName(s string) PubKeyAlgo {
	switch strings.ToLower(s) {
	case "secp256k1":
		return Secp256k1
	case "ed25519":
		return Ed25519
	default:
		return UnknownPubKeyAlgo
	}
}

func (a PubKeyAlgo) String() string {
	switch a {
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	default:
		return fmt.Sprintf("PubKeyAlgo:%d", uint8(a))
	}
}

// PubKeyType returns the amino-style type tag for keys of this algorithm.
func (a PubKeyAlgo) PubKeyType() string {
	switch a {
	case Secp256k1:
		return PubKeyTypeSecp256k1
	case Ed25519:
		return PubKeyTypeEd25519
	default:
		return ""
	}
}

func (a PubKeyAlgo) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *PubKeyAlgo) UnmarshalJSON(b []byte) error {
	var s *string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	if s == nil {
		*a = UnknownPubKeyAlgo
		return nil
	}

	*a = PubKeyAlgoByName(*s)
	if *a == UnknownPubKeyAlgo {
		return fmt.Errorf("invalid public key algorithm: %q", *s)
	}
	return nil
}
