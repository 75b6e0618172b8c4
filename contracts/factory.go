package contracts

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// PackPredictSplitAddress encodes a predictSplitAddress view call.
func PackPredictSplitAddress(authority, token common.Address, uniqueID [32]byte, recipients []SplitRecipient) ([]byte, error) {
	data, err := FactoryABI.Pack("predictSplitAddress", authority, token, uniqueID, recipients)
	if err != nil {
		return nil, fmt.Errorf("%w: predictSplitAddress: %w", ErrPackFailed, err)
	}
	return data, nil
}

// UnpackPredictSplitAddress decodes the predicted split address from a
// predictSplitAddress call result.
func UnpackPredictSplitAddress(data []byte) (common.Address, error) {
	out, err := FactoryABI.Unpack("predictSplitAddress", data)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: predictSplitAddress: %w", ErrUnpackFailed, err)
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// PackCreateSplitConfig encodes a createSplitConfig transaction payload.
func PackCreateSplitConfig(authority, token common.Address, uniqueID [32]byte, recipients []SplitRecipient) ([]byte, error) {
	data, err := FactoryABI.Pack("createSplitConfig", authority, token, uniqueID, recipients)
	if err != nil {
		return nil, fmt.Errorf("%w: createSplitConfig: %w", ErrPackFailed, err)
	}
	return data, nil
}
