// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package build

import (
	"math/big"
	"strconv"
	"strings"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

type Errors []error

func (e Errors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var errs []string
	for _, e := range e {
		errs = append(errs, e.Error())
	}
	return strings.Join(errs, "; ")
}

type parser struct {
	errs []error
}

func (p *parser) ok() bool {
	return len(p.errs) == 0
}

func (p *parser) err() error {
	switch len(p.errs) {
	case 0:
		return nil
	case 1:
		return p.errs[0]
	default:
		return Errors(p.errs)
	}
}

func (p *parser) record(err ...error) {
	errs := make([]error, 0, len(p.errs)+len(err))
	errs = append(errs, p.errs...)
	errs = append(errs, err...)
	p.errs = errs
}

func (p *parser) errorf(code errors.Status, format string, args ...interface{}) {
	p.record(code.Skip(1).WithFormat(format, args...))
}

func (p *parser) parseCoins(v any) protocol.Coins {
	switch v := v.(type) {
	case protocol.Coins:
		return v
	case []protocol.Coin:
		return protocol.Coins(v)
	case protocol.Coin:
		return protocol.Coins{v}
	case string:
		coins, err := protocol.ParseCoins(v)
		if err != nil {
			p.record(err)
			return nil
		}
		return coins
	default:
		p.errorf(errors.BadRequest, "cannot convert %T to coins", v)
		return nil
	}
}

func (p *parser) parseCoin(v any) protocol.Coin {
	switch v := v.(type) {
	case protocol.Coin:
		return v
	case string:
		coin, err := protocol.ParseCoin(v)
		if err != nil {
			p.record(err)
			return protocol.Coin{}
		}
		return coin
	default:
		p.errorf(errors.BadRequest, "cannot convert %T to a coin", v)
		return protocol.Coin{}
	}
}

func (p *parser) parseAccAddress(v any) protocol.AccAddress {
	switch v := v.(type) {
	case protocol.AccAddress:
		return v
	case []byte:
		if len(v) != protocol.AddrLen {
			p.errorf(errors.BadRequest, "invalid address length: want %d, got %d", protocol.AddrLen, len(v))
			return nil
		}
		return protocol.AccAddress(v)
	case string:
		addr, err := protocol.AccAddressFromBech32(v)
		if err != nil {
			p.record(err)
			return nil
		}
		return addr
	default:
		p.errorf(errors.BadRequest, "cannot convert %T to an account address", v)
		return nil
	}
}

func (p *parser) parseValAddress(v any) protocol.ValAddress {
	switch v := v.(type) {
	case protocol.ValAddress:
		return v
	case []byte:
		if len(v) != protocol.AddrLen {
			p.errorf(errors.BadRequest, "invalid address length: want %d, got %d", protocol.AddrLen, len(v))
			return nil
		}
		return protocol.ValAddress(v)
	case string:
		addr, err := protocol.ValAddressFromBech32(v)
		if err != nil {
			p.record(err)
			return nil
		}
		return addr
	default:
		p.errorf(errors.BadRequest, "cannot convert %T to a validator address", v)
		return nil
	}
}

func (p *parser) parseUint(v any) uint64 {
	switch v := v.(type) {
	case *big.Int:
		return v.Uint64()
	case big.Int:
		return v.Uint64()

	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v

	case string:
		u, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.errorf(errors.BadRequest, "not a number: %v", err)
		}
		return u

	default:
		p.errorf(errors.BadRequest, "cannot convert %T to a number", v)
		return 0
	}
}
