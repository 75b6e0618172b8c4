package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ExecutionPreview mirrors the previewExecution return values: what each
// recipient would receive if the split were executed now, plus the pending
// (not yet distributable) variants.
type ExecutionPreview struct {
	RecipientAmounts        []*big.Int
	ProtocolFee             *big.Int
	Available               *big.Int
	PendingRecipientAmounts []*big.Int
	PendingProtocolAmount   *big.Int
}

// PackSplitCall encodes a no-argument call on a split instance
// (e.g. "getBalance", "hasPendingFunds", "executeSplit").
func PackSplitCall(method string) ([]byte, error) {
	data, err := SplitABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackFailed, method, err)
	}
	return data, nil
}

// UnpackBool decodes a single-bool result from the named split method.
func UnpackBool(method string, data []byte) (bool, error) {
	out, err := SplitABI.Unpack(method, data)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrUnpackFailed, method, err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// UnpackBigInt decodes a single-uint256 result from the named split method.
func UnpackBigInt(method string, data []byte) (*big.Int, error) {
	out, err := SplitABI.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnpackFailed, method, err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// UnpackAddress decodes a single-address result from the named split method.
func UnpackAddress(method string, data []byte) (common.Address, error) {
	out, err := SplitABI.Unpack(method, data)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s: %w", ErrUnpackFailed, method, err)
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// UnpackBytes32 decodes a single-bytes32 result from the named split method.
func UnpackBytes32(method string, data []byte) ([32]byte, error) {
	out, err := SplitABI.Unpack(method, data)
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w: %s: %w", ErrUnpackFailed, method, err)
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// UnpackRecipients decodes the getRecipients result.
func UnpackRecipients(data []byte) ([]SplitRecipient, error) {
	out, err := SplitABI.Unpack("getRecipients", data)
	if err != nil {
		return nil, fmt.Errorf("%w: getRecipients: %w", ErrUnpackFailed, err)
	}
	return *abi.ConvertType(out[0], new([]SplitRecipient)).(*[]SplitRecipient), nil
}

// UnpackPreviewExecution decodes the previewExecution result.
func UnpackPreviewExecution(data []byte) (*ExecutionPreview, error) {
	out, err := SplitABI.Unpack("previewExecution", data)
	if err != nil {
		return nil, fmt.Errorf("%w: previewExecution: %w", ErrUnpackFailed, err)
	}
	return &ExecutionPreview{
		RecipientAmounts:        *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int),
		ProtocolFee:             *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		Available:               *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		PendingRecipientAmounts: *abi.ConvertType(out[3], new([]*big.Int)).(*[]*big.Int),
		PendingProtocolAmount:   *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
	}, nil
}

// PackBalanceOf encodes an ERC-20 balanceOf call.
func PackBalanceOf(account common.Address) ([]byte, error) {
	data, err := ERC20ABI.Pack("balanceOf", account)
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf: %w", ErrPackFailed, err)
	}
	return data, nil
}

// UnpackBalanceOf decodes an ERC-20 balanceOf result.
func UnpackBalanceOf(data []byte) (*big.Int, error) {
	out, err := ERC20ABI.Unpack("balanceOf", data)
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf: %w", ErrUnpackFailed, err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
