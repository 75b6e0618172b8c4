package contracts

import "errors"

var (
	// ErrPackFailed indicates call arguments could not be ABI-encoded.
	ErrPackFailed = errors.New("contracts: abi pack failed")

	// ErrUnpackFailed indicates a call result or log could not be decoded.
	ErrUnpackFailed = errors.New("contracts: abi unpack failed")

	// ErrEventMismatch indicates a log's topic does not match the expected event.
	ErrEventMismatch = errors.New("contracts: event signature mismatch")
)
