// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"regexp"
	"sort"
	"strings"

	"cosmossdk.io/math"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// NewCoin constructs a coin.
func NewCoin(denom string, amount math.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// NewInt64Coin constructs a coin from an int64 amount.
func NewInt64Coin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: math.NewInt(amount)}
}

// IsValid returns true if the denomination is well formed and the amount is
// positive.
func (c Coin) IsValid() bool {
	return IsValidDenom(c.Denom) && !c.Amount.IsNil() && c.Amount.IsPositive()
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Coins is a set of coins, one per denomination, sorted by denomination.
type Coins []Coin

// Sort sorts the set by denomination and returns it.
func (cs Coins) Sort() Coins {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Denom < cs[j].Denom })
	return cs
}

// Validate verifies every coin is valid and the set is strictly sorted by
// denomination, which also rules out duplicates. An empty set is valid.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if !c.IsValid() {
			return errors.BadRequest.WithFormat("invalid coin %s", c)
		}
		if i > 0 && cs[i-1].Denom >= c.Denom {
			return errors.BadRequest.WithFormat("coins are not sorted by denom: %s before %s", cs[i-1].Denom, c.Denom)
		}
	}
	return nil
}

// IsValid returns true if Validate returns nil.
func (cs Coins) IsValid() bool { return cs.Validate() == nil }

// IsZero returns true if the set is empty.
func (cs Coins) IsZero() bool { return len(cs) == 0 }

// Add returns a new set with the coins merged in by denomination.
func (cs Coins) Add(coins ...Coin) Coins {
	sums := make(map[string]math.Int, len(cs)+len(coins))
	for _, c := range cs {
		sums[c.Denom] = c.Amount
	}
	for _, c := range coins {
		if v, ok := sums[c.Denom]; ok {
			sums[c.Denom] = v.Add(c.Amount)
		} else {
			sums[c.Denom] = c.Amount
		}
	}

	out := make(Coins, 0, len(sums))
	for denom, amount := range sums {
		out = append(out, Coin{Denom: denom, Amount: amount})
	}
	return out.Sort()
}

// Equal returns true if both sets contain the same denominations with the
// same amounts, regardless of order.
func (cs Coins) Equal(other Coins) bool {
	a, b := append(Coins{}, cs...).Sort(), append(Coins{}, other...).Sort()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Denom != b[i].Denom || !a[i].Amount.Equal(b[i].Amount) {
			return false
		}
	}
	return true
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

var reCoin = regexp.MustCompile(`^([0-9]+)\s*([a-z][a-z0-9/\-]{2,127})$`)

// ParseCoin parses a coin from a decimal amount followed by a denomination,
// such as "10stake".
func ParseCoin(s string) (Coin, error) {
	m := reCoin.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Coin{}, errors.BadRequest.WithFormat("invalid coin expression %q", s)
	}

	amount, ok := math.NewIntFromString(m[1])
	if !ok {
		return Coin{}, errors.BadRequest.WithFormat("invalid coin amount %q", m[1])
	}
	return Coin{Denom: m[2], Amount: amount}, nil
}

// ParseCoins parses a comma-separated list of coins and sorts the result.
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coins{}, nil
	}

	parts := strings.Split(s, ",")
	coins := make(Coins, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCoin(p)
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}

	coins.Sort()
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}
