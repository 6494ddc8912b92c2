// Package transport implements querier.Transport over CometBFT RPC and the
// cosmos gRPC endpoint, plus decorators that meter and log the queries
// passing through another transport. No transport retries.
package transport
