// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"

	"github.com/btcsuite/btcutil/bech32"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// Bech32 human-readable prefixes for Meridian addresses.
const (
	Bech32PrefixAccAddr = "mer"
	Bech32PrefixValAddr = "merval"
)

// AddrLen is the length of a raw address in bytes.
const AddrLen = 20

// AccAddress is the raw bytes of an account address.
type AccAddress []byte

// AccAddressFromBech32 decodes an account address from its bech32 form.
func AccAddressFromBech32(s string) (AccAddress, error) {
	b, err := decodeBech32(Bech32PrefixAccAddr, s)
	if err != nil {
		return nil, err
	}
	return AccAddress(b), nil
}

func (a AccAddress) Bytes() []byte { return a }
func (a AccAddress) Empty() bool   { return len(a) == 0 }

func (a AccAddress) String() string {
	if a.Empty() {
		return ""
	}
	return encodeBech32(Bech32PrefixAccAddr, a)
}

func (a AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccAddress) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*a = nil
		return nil
	}

	v, err := AccAddressFromBech32(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ValAddress is the raw bytes of a validator operator address.
type ValAddress []byte

// ValAddressFromBech32 decodes a validator address from its bech32 form.
func ValAddressFromBech32(s string) (ValAddress, error) {
	b, err := decodeBech32(Bech32PrefixValAddr, s)
	if err != nil {
		return nil, err
	}
	return ValAddress(b), nil
}

func (a ValAddress) Bytes() []byte { return a }
func (a ValAddress) Empty() bool   { return len(a) == 0 }

func (a ValAddress) String() string {
	if a.Empty() {
		return ""
	}
	return encodeBech32(Bech32PrefixValAddr, a)
}

func (a ValAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *ValAddress) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*a = nil
		return nil
	}

	v, err := ValAddressFromBech32(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func encodeBech32(hrp string, b []byte) string {
	conv, err := bech32.ConvertBits(b, 8, 5, true)
	if err != nil {
		// Cannot fail with pad=true
		panic(err)
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		panic(err)
	}
	return s
}

func decodeBech32(hrp, s string) ([]byte, error) {
	gotHrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, errors.BadRequest.WithCauseAndFormat(err, "invalid bech32 string %q", s)
	}
	if gotHrp != hrp {
		return nil, errors.BadRequest.WithFormat("invalid address prefix: want %s, got %s", hrp, gotHrp)
	}

	b, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.BadRequest.WithCauseAndFormat(err, "invalid bech32 data in %q", s)
	}
	if len(b) != AddrLen {
		return nil, errors.BadRequest.WithFormat("invalid address length: want %d, got %d", AddrLen, len(b))
	}
	return b, nil
}
