package signing

import (
	"context"

	"github.com/cometbft/cometbft/crypto"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/pkg/keys"
	"gitlab.com/meridianhub/meridian-sdk/protocol"
)

// AccountResolver resolves the on-chain state of an account.
type AccountResolver interface {
	QueryAccount(ctx context.Context, addr protocol.AccAddress) (*protocol.BaseAccount, error)
}

// Signer signs transactions. Keys supplies decrypted key material and
// Resolver supplies nonces for transactions that do not pin their own.
type Signer struct {
	Keys     keys.KeyDAO
	Resolver AccountResolver
}

// Sign signs a transaction and returns a new value carrying exactly one
// signature. The input transaction is never modified.
//
// The signature covers the canonical sign doc assembled from the resolved
// nonce, the chain id, and the transaction's fee, memo, and messages. If the
// transaction already carries a public key it is kept as-is; otherwise one is
// derived from the private key.
func (s *Signer) Sign(ctx context.Context, tx *protocol.StdTx, baseTx protocol.BaseTx) (*protocol.StdTx, error) {
	if tx == nil {
		return nil, errors.BadRequest.With("missing transaction")
	}
	if baseTx.From == "" {
		return nil, errors.BadRequest.With("signer name is missing")
	}
	if baseTx.Password == "" {
		return nil, errors.BadRequest.With("password is missing")
	}
	if s.Keys == nil {
		return nil, errors.Misconfigured.With("no key store")
	}

	info, err := s.Keys.Read(baseTx.From, baseTx.Password)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	algo := info.Algo
	if algo == protocol.UnknownPubKeyAlgo {
		algo = baseTx.PubKeyAlgo()
	}
	priv, err := KeyFromBytes(algo, info.PrivKey)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	nonce, err := s.resolveNonce(ctx, baseTx, priv)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	pk, ok := tx.PubKey()
	if !ok {
		pk = PubKeyFor(algo, priv)
	}

	doc, err := protocol.NewSignDoc(nonce, baseTx.ChainID, tx.Fee, tx.Memo, tx.Msgs)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	docBytes, err := doc.Bytes()
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	sig, err := priv.Sign(docBytes)
	if err != nil {
		return nil, errors.InternalError.WithCauseAndFormat(err, "sign")
	}

	return tx.WithSignature(protocol.StdSignature{
		PubKey:        pk,
		Signature:     sig,
		AccountNumber: nonce.AccountNumber,
		Sequence:      nonce.Sequence,
	}), nil
}

// resolveNonce returns the nonce pinned by baseTx, or queries the chain when
// either half of the pair is missing. Once a concrete pair exists the
// optional fields are never read again.
func (s *Signer) resolveNonce(ctx context.Context, baseTx protocol.BaseTx, priv crypto.PrivKey) (protocol.Nonce, error) {
	if nonce, ok := baseTx.Nonce(); ok {
		return nonce, nil
	}

	if s.Resolver == nil {
		return protocol.Nonce{}, errors.Misconfigured.With("no account resolver")
	}
	addr := protocol.AccAddress(priv.PubKey().Address())
	acct, err := s.Resolver.QueryAccount(ctx, addr)
	if err != nil {
		return protocol.Nonce{}, err
	}
	return acct.Nonce(), nil
}

// SignBytes signs an externally prepared sign document. The document is
// signed as-is; composing it correctly is the caller's business.
func (s *Signer) SignBytes(doc []byte, name, password string) ([]byte, protocol.PubKey, error) {
	if len(doc) == 0 {
		return nil, protocol.PubKey{}, errors.BadRequest.With("sign doc is empty")
	}
	if name == "" {
		return nil, protocol.PubKey{}, errors.BadRequest.With("signer name is missing")
	}
	if password == "" {
		return nil, protocol.PubKey{}, errors.BadRequest.With("password is missing")
	}
	if s.Keys == nil {
		return nil, protocol.PubKey{}, errors.Misconfigured.With("no key store")
	}

	info, err := s.Keys.Read(name, password)
	if err != nil {
		return nil, protocol.PubKey{}, errors.UnknownError.Wrap(err)
	}

	algo := info.Algo
	if algo == protocol.UnknownPubKeyAlgo {
		algo = protocol.Secp256k1
	}
	priv, err := KeyFromBytes(algo, info.PrivKey)
	if err != nil {
		return nil, protocol.PubKey{}, errors.UnknownError.Wrap(err)
	}

	sig, err := priv.Sign(doc)
	if err != nil {
		return nil, protocol.PubKey{}, errors.InternalError.WithCauseAndFormat(err, "sign")
	}
	return sig, PubKeyFor(algo, priv), nil
}
