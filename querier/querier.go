// Package querier exposes the dYdX node's query service as typed methods.
// Every method encodes a request, sends it over an unverified Transport,
// and decodes the response bound to the same query path. Nothing is cached
// or retried; transport errors reach the caller unchanged.
package querier

import (
	"context"

	errorsmod "cosmossdk.io/errors"
)

type Querier struct {
	transport Transport
	codec     *Codec
	accounts  *AccountDecoder
}

type Option func(*Querier)

// WithAccountType teaches the querier an additional account type URL.
func WithAccountType(typeURL string, decode BaseAccountDecodeFunc) Option {
	return func(q *Querier) {
		q.accounts.Register(typeURL, decode)
	}
}

// New returns a Querier over the given transport. The querier is immutable
// once built and safe for concurrent use.
func New(transport Transport, opts ...Option) *Querier {
	codec := NewCodec()
	q := &Querier{
		transport: transport,
		codec:     codec,
		accounts:  NewAccountDecoder(codec),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// send runs the encode, transport, decode pipeline for one query path.
func (q *Querier) send(ctx context.Context, path string, req, resp Message) error {
	bz, err := q.codec.Marshal(req)
	if err != nil {
		return errorsmod.Wrap(err, path)
	}

	out, err := q.transport.QueryUnverified(ctx, path, bz)
	if err != nil {
		return err
	}

	if err := q.codec.Unmarshal(out, resp); err != nil {
		return errorsmod.Wrap(err, path)
	}
	return nil
}
