package querier

import errorsmod "cosmossdk.io/errors"

const codespace = "dydxquery"

var (
	// ErrUnexpectedResponse is returned when a decoded response lacks a
	// field the querier requires. It points at a client/node protocol
	// mismatch, not at a missing entity.
	ErrUnexpectedResponse = errorsmod.Register(codespace, 2, "unexpected response")
	ErrUnknownAccountType = errorsmod.Register(codespace, 3, "unknown account type")
	ErrDecodeResponse     = errorsmod.Register(codespace, 4, "unable to decode response")
	ErrEncodeRequest      = errorsmod.Register(codespace, 5, "unable to encode request")
)
