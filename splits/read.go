package splits

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cascade-protocol/splits-go/contracts"
)

// IsSplit reports whether the address hosts a Cascade split instance. An
// invalid or empty address is an expected input, not an exceptional one:
// any failure (no contract, wrong contract, transport error) resolves to
// false rather than an error.
func (c *Client) IsSplit(ctx context.Context, addr common.Address) bool {
	data, err := contracts.PackSplitCall("isCascadeSplitConfig")
	if err != nil {
		return false
	}
	out, err := c.call(ctx, addr, data)
	if err != nil {
		return false
	}
	valid, err := contracts.UnpackBool("isCascadeSplitConfig", out)
	return err == nil && valid
}

// SplitBalance returns the split's settlement-token balance in the token's
// smallest unit.
func (c *Client) SplitBalance(ctx context.Context, split common.Address) (*big.Int, error) {
	return c.readBigInt(ctx, split, "getBalance")
}

// HasPendingFunds reports whether the split holds undistributed funds.
func (c *Client) HasPendingFunds(ctx context.Context, split common.Address) (bool, error) {
	data, err := contracts.PackSplitCall("hasPendingFunds")
	if err != nil {
		return false, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return false, err
	}
	return contracts.UnpackBool("hasPendingFunds", out)
}

// PendingAmount returns the amount awaiting distribution.
func (c *Client) PendingAmount(ctx context.Context, split common.Address) (*big.Int, error) {
	return c.readBigInt(ctx, split, "pendingAmount")
}

// TotalUnclaimed returns the total of failed transfers still claimable.
func (c *Client) TotalUnclaimed(ctx context.Context, split common.Address) (*big.Int, error) {
	return c.readBigInt(ctx, split, "totalUnclaimed")
}

// SplitAuthority returns the split's controlling authority.
func (c *Client) SplitAuthority(ctx context.Context, split common.Address) (common.Address, error) {
	return c.readAddress(ctx, split, "authority")
}

// SplitToken returns the split's settlement token.
func (c *Client) SplitToken(ctx context.Context, split common.Address) (common.Address, error) {
	return c.readAddress(ctx, split, "token")
}

// SplitUniqueID returns the split's 32-byte identifier.
func (c *Client) SplitUniqueID(ctx context.Context, split common.Address) ([32]byte, error) {
	data, err := contracts.PackSplitCall("uniqueId")
	if err != nil {
		return [32]byte{}, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return [32]byte{}, err
	}
	return contracts.UnpackBytes32("uniqueId", out)
}

// SplitRecipients returns the split's recipient list in distribution order.
func (c *Client) SplitRecipients(ctx context.Context, split common.Address) ([]contracts.SplitRecipient, error) {
	data, err := contracts.PackSplitCall("getRecipients")
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return nil, err
	}
	return contracts.UnpackRecipients(out)
}

// GetSplitConfig returns the full configuration of a deployed split, or nil
// when the address is not a valid split. Like IsSplit, absence is the
// expected answer for a bad address, so errors resolve to nil.
func (c *Client) GetSplitConfig(ctx context.Context, split common.Address) *SplitConfig {
	if !c.IsSplit(ctx, split) {
		return nil
	}

	authority, err := c.SplitAuthority(ctx, split)
	if err != nil {
		return nil
	}
	token, err := c.SplitToken(ctx, split)
	if err != nil {
		return nil
	}
	uniqueID, err := c.SplitUniqueID(ctx, split)
	if err != nil {
		return nil
	}
	recipients, err := c.SplitRecipients(ctx, split)
	if err != nil {
		return nil
	}

	return &SplitConfig{
		Authority:  authority,
		Token:      token,
		UniqueID:   uniqueID,
		Recipients: recipients,
	}
}

// PreviewExecution returns what an execution would distribute right now:
// per-recipient amounts, the protocol fee, the available total, and the
// pending variants of each.
func (c *Client) PreviewExecution(ctx context.Context, split common.Address) (*contracts.ExecutionPreview, error) {
	data, err := contracts.PackSplitCall("previewExecution")
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return nil, err
	}
	return contracts.UnpackPreviewExecution(out)
}

// TokenBalance returns an account's balance of an arbitrary ERC-20 token.
func (c *Client) TokenBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	data, err := contracts.PackBalanceOf(account)
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, token, data)
	if err != nil {
		return nil, err
	}
	return contracts.UnpackBalanceOf(out)
}

func (c *Client) readBigInt(ctx context.Context, split common.Address, method string) (*big.Int, error) {
	data, err := contracts.PackSplitCall(method)
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return nil, err
	}
	return contracts.UnpackBigInt(method, out)
}

func (c *Client) readAddress(ctx context.Context, split common.Address, method string) (common.Address, error) {
	data, err := contracts.PackSplitCall(method)
	if err != nil {
		return common.Address{}, err
	}
	out, err := c.call(ctx, split, data)
	if err != nil {
		return common.Address{}, err
	}
	return contracts.UnpackAddress(method, out)
}
