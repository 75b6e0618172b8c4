package chains

import "errors"

var (
	// ErrUnsupportedChain indicates Cascade Splits is not deployed on the chain.
	ErrUnsupportedChain = errors.New("chains: unsupported chain")
)
