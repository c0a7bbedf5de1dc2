// Package client implements the Meridian client facade: transaction
// construction, signing, and broadcast against a node's JSON-RPC surface.
package client

import (
	"context"
	"time"

	"github.com/AccumulateNetwork/jsonrpc2/v15"
	"github.com/rs/zerolog"

	"gitlab.com/meridianhub/meridian-sdk/pkg/client/signing"
	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
	"gitlab.com/meridianhub/meridian-sdk/pkg/keys"
)

const (
	ServerDefault  = "http://localhost:26657"
	TimeoutDefault = 15 * time.Second
)

// Config configures a Client. ChainID and Keys are required; everything else
// has a usable default.
type Config struct {
	// Server is the node's JSON-RPC endpoint.
	Server string

	// ChainID identifies the chain the client signs for.
	ChainID string

	// Keys supplies decrypted signing keys.
	Keys keys.KeyDAO

	// Timeout bounds each RPC request.
	Timeout time.Duration

	// Logger receives debug-level request and broadcast logging.
	Logger *zerolog.Logger
}

// Client is a Meridian node client.
type Client struct {
	server  string
	chainID string
	logger  zerolog.Logger
	signer  *signing.Signer
	jsonrpc2.Client
}

// New creates a client. Configuration is validated here, once: an incomplete
// configuration fails construction instead of surfacing later on some call
// path.
func New(cfg Config) (*Client, error) {
	if cfg.ChainID == "" {
		return nil, errors.Misconfigured.With("chain id is missing")
	}
	if cfg.Keys == nil {
		return nil, errors.Misconfigured.With("no key store")
	}
	if cfg.Timeout < 0 {
		return nil, errors.Misconfigured.WithFormat("negative timeout %v", cfg.Timeout)
	}

	c := &Client{server: cfg.Server, chainID: cfg.ChainID}
	if c.server == "" {
		c.server = ServerDefault
	}
	c.Timeout = cfg.Timeout
	if c.Timeout == 0 {
		c.Timeout = TimeoutDefault
	}
	c.logger = zerolog.Nop()
	if cfg.Logger != nil {
		c.logger = *cfg.Logger
	}
	c.signer = &signing.Signer{Keys: cfg.Keys, Resolver: c}
	return c, nil
}

// ChainID returns the chain the client is configured for.
func (c *Client) ChainID() string { return c.chainID }

// Request dispatches a JSON-RPC request to the configured server. Transport
// and RPC-level failures are reported as network errors.
func (c *Client) Request(ctx context.Context, method string, params, result interface{}) error {
	c.logger.Debug().Str("server", c.server).Str("method", method).Msg("rpc request")

	err := c.Client.Request(ctx, c.server, method, params, result)
	if err == nil {
		return nil
	}

	var rpcErr jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return errors.NetworkError.WithCauseAndFormat(rpcErr, "%s: rpc error %v", method, rpcErr.Code)
	}
	return errors.NetworkError.WithCauseAndFormat(err, "%s", method)
}
