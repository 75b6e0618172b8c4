package splits

import "errors"

var (
	// ErrInvalidShareSum indicates recipient shares do not sum to exactly 100.
	ErrInvalidShareSum = errors.New("splits: recipient shares must sum to 100")

	// ErrRecipientCount indicates the recipient count is outside [1, 20].
	ErrRecipientCount = errors.New("splits: recipient count out of range")

	// ErrInvalidBpsTotal indicates encoded basis points do not sum to 9900.
	ErrInvalidBpsTotal = errors.New("splits: basis points must sum to 9900")

	// ErrExecutionReverted indicates a mined transaction reverted on-chain
	// (receipt status 0).
	ErrExecutionReverted = errors.New("splits: execution reverted on-chain")

	// ErrMissingPrivateKey indicates the client was built without a signing key.
	ErrMissingPrivateKey = errors.New("splits: private key required")
)
