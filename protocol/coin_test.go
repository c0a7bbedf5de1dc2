// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

func TestParseCoins(t *testing.T) {
	cases := map[string]struct {
		In   string
		Want Coins
		Err  bool
	}{
		"Empty":     {"", Coins{}, false},
		"Single":    {"10stake", Coins{NewInt64Coin("stake", 10)}, false},
		"Spaced":    {" 10 stake ", Coins{NewInt64Coin("stake", 10)}, false},
		"Multi":     {"5atom,10stake", Coins{NewInt64Coin("atom", 5), NewInt64Coin("stake", 10)}, false},
		"Unsorted":  {"10stake,5atom", Coins{NewInt64Coin("atom", 5), NewInt64Coin("stake", 10)}, false},
		"Duplicate": {"1stake,2stake", nil, true},
		"BadDenom":  {"10STAKE", nil, true},
		"BadAmount": {"stake", nil, true},
		"Zero":      {"0stake", nil, true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCoins(c.In)
			if c.Err {
				require.Error(t, err)
				require.Equal(t, errors.BadRequest, errors.Code(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.Want, got)
		})
	}
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		Coins Coins
		Err   bool
	}{
		"Empty":       {Coins{}, false},
		"Sorted":      {Coins{NewInt64Coin("atom", 1), NewInt64Coin("stake", 2)}, false},
		"Unsorted":    {Coins{NewInt64Coin("stake", 2), NewInt64Coin("atom", 1)}, true},
		"Duplicate":   {Coins{NewInt64Coin("stake", 1), NewInt64Coin("stake", 2)}, true},
		"Zero":        {Coins{NewInt64Coin("stake", 0)}, true},
		"Negative":    {Coins{NewInt64Coin("stake", -1)}, true},
		"NilAmount":   {Coins{{Denom: "stake"}}, true},
		"UpperDenom":  {Coins{NewInt64Coin("STAKE", 1)}, true},
		"ShortDenom":  {Coins{NewInt64Coin("st", 1)}, true},
		"LargeAmount": {Coins{NewCoin("stake", math.NewIntFromUint64(1).MulRaw(1e18).MulRaw(1e18))}, false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.Coins.Validate()
			if c.Err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCoinsAddEqual(t *testing.T) {
	a := Coins{NewInt64Coin("atom", 5)}
	b := a.Add(NewInt64Coin("stake", 10), NewInt64Coin("atom", 3))

	require.Equal(t, Coins{NewInt64Coin("atom", 5)}, a)
	require.Equal(t, Coins{NewInt64Coin("atom", 8), NewInt64Coin("stake", 10)}, b)

	require.True(t, b.Equal(Coins{NewInt64Coin("stake", 10), NewInt64Coin("atom", 8)}))
	require.False(t, b.Equal(a))
	require.True(t, Coins{}.Equal(nil))
}
