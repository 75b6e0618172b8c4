package gas

import "errors"

var (
	// ErrNonceUnavailable indicates the sender's nonce could not be fetched.
	ErrNonceUnavailable = errors.New("gas: nonce unavailable")

	// ErrEstimateFailed indicates the gas estimation call failed.
	ErrEstimateFailed = errors.New("gas: estimation failed")
)
