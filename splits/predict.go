package splits

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cascade-protocol/splits-go/contracts"
)

// PredictSplitAddress computes the address a split with these parameters
// would deploy to, via the factory's CREATE2 derivation. The answer is the
// same before and after deployment; transport errors propagate unmasked.
func (c *Client) PredictSplitAddress(ctx context.Context, uniqueID []byte, recipients []Recipient, authority, token common.Address) (common.Address, error) {
	if authority == (common.Address{}) {
		authority = c.sender
	}
	if token == (common.Address{}) {
		token = c.defaultToken
	}

	encoded, err := ConvertRecipients(recipients)
	if err != nil {
		return common.Address{}, err
	}

	return c.predictEncoded(ctx, authority, token, NormalizeUniqueID(uniqueID), encoded)
}

// predictEncoded issues the predictSplitAddress view call with already
// encoded recipients.
func (c *Client) predictEncoded(ctx context.Context, authority, token common.Address, uniqueID [32]byte, encoded []contracts.SplitRecipient) (common.Address, error) {
	data, err := contracts.PackPredictSplitAddress(authority, token, uniqueID, encoded)
	if err != nil {
		return common.Address{}, err
	}
	out, err := c.call(ctx, c.factory, data)
	if err != nil {
		return common.Address{}, err
	}
	return contracts.UnpackPredictSplitAddress(out)
}
