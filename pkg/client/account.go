// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package client

import (
	"context"
	"encoding/json"
	"strconv"

	"golang.org/x/sync/errgroup"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

const (
	methodAuthAccount  = "auth_account"
	methodBankBalances = "bank_balances"
)

// AccountQuery is the parameter set for account queries.
type AccountQuery struct {
	Address string `json:"address"`
}

// QueryAccount fetches the on-chain state of an account, merging the account
// info and balance sub-queries. The sub-queries run concurrently. An account
// the chain has never seen resolves with account number and sequence zero.
func (c *Client) QueryAccount(ctx context.Context, addr protocol.AccAddress) (*protocol.BaseAccount, error) {
	if addr.Empty() {
		return nil, errors.BadRequest.With("address is missing")
	}

	query := &AccountQuery{Address: addr.String()}
	acct := &protocol.BaseAccount{Address: addr}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var res struct {
			Account *struct {
				AccountNumber json.Number `json:"account_number"`
				Sequence      json.Number `json:"sequence"`
			} `json:"account"`
		}
		if err := c.Request(ctx, methodAuthAccount, query, &res); err != nil {
			return err
		}
		if res.Account == nil {
			// No history yet
			return nil
		}

		var err error
		acct.AccountNumber, err = parseNumber(res.Account.AccountNumber)
		if err != nil {
			return errors.EncodingError.WithCauseAndFormat(err, "invalid account number")
		}
		acct.Sequence, err = parseNumber(res.Account.Sequence)
		if err != nil {
			return errors.EncodingError.WithCauseAndFormat(err, "invalid sequence")
		}
		return nil
	})
	eg.Go(func() error {
		var res struct {
			Balances protocol.Coins `json:"balances"`
		}
		if err := c.Request(ctx, methodBankBalances, query, &res); err != nil {
			return err
		}
		acct.Coins = res.Balances
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	c.logger.Debug().
		Str("address", addr.String()).
		Uint64("account_number", acct.AccountNumber).
		Uint64("sequence", acct.Sequence).
		Msg("resolved account")
	return acct, nil
}

// parseNumber accepts the decimal-string and bare-integer forms nodes use
// interchangeably for account numbers and sequences.
func parseNumber(n json.Number) (uint64, error) {
	if n == "" {
		return 0, nil
	}
	return strconv.ParseUint(n.String(), 10, 64)
}
