package build

import (
	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

type TransactionBuilder struct {
	parser
	msgs   []protocol.Msg
	baseTx protocol.BaseTx
}

func (b TransactionBuilder) WithBaseTx(baseTx protocol.BaseTx) TransactionBuilder {
	b.baseTx = baseTx
	return b
}

func (b TransactionBuilder) WithChainID(id string) TransactionBuilder {
	b.baseTx.ChainID = id
	return b
}

func (b TransactionBuilder) WithMemo(memo string) TransactionBuilder {
	b.baseTx.Memo = memo
	return b
}

func (b TransactionBuilder) WithFee(fee any) TransactionBuilder {
	b.baseTx.Fee = b.parseCoins(fee)
	return b
}

func (b TransactionBuilder) WithGas(gas any) TransactionBuilder {
	b.baseTx.Gas = b.parseUint(gas)
	return b
}

// WithNonce pins the account number and sequence, suppressing on-chain
// resolution when the transaction is signed.
func (b TransactionBuilder) WithNonce(accountNumber, sequence uint64) TransactionBuilder {
	b.baseTx.AccountNumber = &accountNumber
	b.baseTx.Sequence = &sequence
	return b
}

func (b TransactionBuilder) WithMsg(msgs ...protocol.Msg) TransactionBuilder {
	b.msgs = append(b.msgs, msgs...)
	return b
}

// BaseTx returns the base transaction parameters accumulated so far.
func (b TransactionBuilder) BaseTx() protocol.BaseTx {
	return b.baseTx
}

func (b TransactionBuilder) Build() (*protocol.StdTx, error) {
	// Argument errors preempt validation. A message assembled from
	// arguments that did not parse has nothing meaningful to validate.
	if !b.ok() {
		return nil, b.err()
	}

	if len(b.msgs) == 0 {
		b.errorf(errors.BadRequest, "transaction has no messages")
	}
	for _, m := range b.msgs {
		if err := m.ValidateBasic(); err != nil {
			b.record(err)
		}
	}
	if len(b.baseTx.Fee) > 0 {
		if err := b.baseTx.Fee.Validate(); err != nil {
			b.record(err)
		}
	}
	if !b.ok() {
		return nil, b.err()
	}
	return protocol.NewStdTx(b.msgs, b.baseTx.StdFee(), b.baseTx.Memo), nil
}

// Send opens a transfer from the given account. A single recipient produces a
// bank send message; additional recipients fold into a multi-send with one
// input covering the combined amount.
func (b TransactionBuilder) Send(from any) SendBuilder {
	c := SendBuilder{t: b}
	c.from = c.t.parseAccAddress(from)
	return c
}

type SendBuilder struct {
	t    TransactionBuilder
	from protocol.AccAddress
	to   []protocol.Output
}

func (b SendBuilder) To(recipient any, coins any) SendBuilder {
	out := protocol.Output{
		Address: b.t.parseAccAddress(recipient),
		Coins:   b.t.parseCoins(coins),
	}
	b.to = append(b.to, out)
	return b
}

func (b SendBuilder) AndTo(recipient any, coins any) SendBuilder {
	return b.To(recipient, coins)
}

func (b SendBuilder) Done() TransactionBuilder {
	t := b.t
	switch len(b.to) {
	case 0:
		t.errorf(errors.BadRequest, "send has no recipients")
		return t
	case 1:
		t.msgs = append(t.msgs, &protocol.MsgSend{
			FromAddress: b.from,
			ToAddress:   b.to[0].Address,
			Amount:      b.to[0].Coins,
		})
		return t
	default:
		var total protocol.Coins
		for _, out := range b.to {
			total = total.Add(out.Coins...)
		}
		t.msgs = append(t.msgs, &protocol.MsgMultiSend{
			Inputs:  []protocol.Input{{Address: b.from, Coins: total}},
			Outputs: b.to,
		})
		return t
	}
}

func (b SendBuilder) Build() (*protocol.StdTx, error) {
	return b.Done().Build()
}

func (b TransactionBuilder) Delegate(delegator, validator, amount any) TransactionBuilder {
	m := protocol.MsgDelegate{
		DelegatorAddress: b.parseAccAddress(delegator),
		ValidatorAddress: b.parseValAddress(validator),
		Amount:           b.parseCoin(amount),
	}
	b.msgs = append(b.msgs, &m)
	return b
}

func (b TransactionBuilder) Undelegate(delegator, validator, amount any) TransactionBuilder {
	m := protocol.MsgUndelegate{
		DelegatorAddress: b.parseAccAddress(delegator),
		ValidatorAddress: b.parseValAddress(validator),
		Amount:           b.parseCoin(amount),
	}
	b.msgs = append(b.msgs, &m)
	return b
}

func (b TransactionBuilder) Redelegate(delegator, src, dst, amount any) TransactionBuilder {
	m := protocol.MsgBeginRedelegate{
		DelegatorAddress:    b.parseAccAddress(delegator),
		ValidatorSrcAddress: b.parseValAddress(src),
		ValidatorDstAddress: b.parseValAddress(dst),
		Amount:              b.parseCoin(amount),
	}
	b.msgs = append(b.msgs, &m)
	return b
}

func (b TransactionBuilder) WithdrawReward(delegator, validator any) TransactionBuilder {
	m := protocol.MsgWithdrawDelegatorReward{
		DelegatorAddress: b.parseAccAddress(delegator),
		ValidatorAddress: b.parseValAddress(validator),
	}
	b.msgs = append(b.msgs, &m)
	return b
}

func (b TransactionBuilder) WithdrawCommission(validator any) TransactionBuilder {
	m := protocol.MsgWithdrawValidatorCommission{
		ValidatorAddress: b.parseValAddress(validator),
	}
	b.msgs = append(b.msgs, &m)
	return b
}
