package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// SplitConfigCreatedEvent is emitted by the factory when a split is deployed.
type SplitConfigCreatedEvent struct {
	Split      common.Address
	Authority  common.Address
	Token      common.Address
	UniqueId   [32]byte
	Recipients []SplitRecipient
}

// SplitExecutedEvent is emitted by a split instance after distribution.
type SplitExecutedEvent struct {
	TotalAmount      *big.Int
	ProtocolFee      *big.Int
	UnclaimedCleared *big.Int
	NewUnclaimed     *big.Int
}

// TransferFailedEvent is emitted once per recipient whose transfer failed
// during distribution; the amount becomes unclaimed.
type TransferFailedEvent struct {
	Recipient  common.Address
	Amount     *big.Int
	IsProtocol bool
}

// ParseSplitConfigCreated decodes a SplitConfigCreated log.
func ParseSplitConfigCreated(log types.Log) (*SplitConfigCreatedEvent, error) {
	ev := FactoryABI.Events["SplitConfigCreated"]
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return nil, fmt.Errorf("%w: SplitConfigCreated", ErrEventMismatch)
	}

	var out SplitConfigCreatedEvent
	if err := FactoryABI.UnpackIntoInterface(&out, "SplitConfigCreated", log.Data); err != nil {
		return nil, fmt.Errorf("%w: SplitConfigCreated: %w", ErrUnpackFailed, err)
	}
	if err := abi.ParseTopics(&out, indexedInputs(ev.Inputs), log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: SplitConfigCreated topics: %w", ErrUnpackFailed, err)
	}
	return &out, nil
}

// ParseSplitExecuted decodes a SplitExecuted log.
func ParseSplitExecuted(log types.Log) (*SplitExecutedEvent, error) {
	ev := SplitABI.Events["SplitExecuted"]
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return nil, fmt.Errorf("%w: SplitExecuted", ErrEventMismatch)
	}

	var out SplitExecutedEvent
	if err := SplitABI.UnpackIntoInterface(&out, "SplitExecuted", log.Data); err != nil {
		return nil, fmt.Errorf("%w: SplitExecuted: %w", ErrUnpackFailed, err)
	}
	return &out, nil
}

// ParseTransferFailed decodes a TransferFailed log.
func ParseTransferFailed(log types.Log) (*TransferFailedEvent, error) {
	ev := SplitABI.Events["TransferFailed"]
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return nil, fmt.Errorf("%w: TransferFailed", ErrEventMismatch)
	}

	var out TransferFailedEvent
	if err := SplitABI.UnpackIntoInterface(&out, "TransferFailed", log.Data); err != nil {
		return nil, fmt.Errorf("%w: TransferFailed: %w", ErrUnpackFailed, err)
	}
	if err := abi.ParseTopics(&out, indexedInputs(ev.Inputs), log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: TransferFailed topics: %w", ErrUnpackFailed, err)
	}
	return &out, nil
}

// CreatedEventFromReceipt returns the SplitConfigCreated event from a
// creation receipt, or nil if the receipt carries none.
func CreatedEventFromReceipt(receipt *types.Receipt) *SplitConfigCreatedEvent {
	for _, log := range receipt.Logs {
		if ev, err := ParseSplitConfigCreated(*log); err == nil {
			return ev
		}
	}
	return nil
}

// ExecutedEventFromReceipt returns the SplitExecuted event from a
// distribution receipt, or nil if the receipt carries none.
func ExecutedEventFromReceipt(receipt *types.Receipt) *SplitExecutedEvent {
	for _, log := range receipt.Logs {
		if ev, err := ParseSplitExecuted(*log); err == nil {
			return ev
		}
	}
	return nil
}

// FailedTransfersFromReceipt returns every TransferFailed event in a
// distribution receipt.
func FailedTransfersFromReceipt(receipt *types.Receipt) []*TransferFailedEvent {
	var failures []*TransferFailedEvent
	for _, log := range receipt.Logs {
		if ev, err := ParseTransferFailed(*log); err == nil {
			failures = append(failures, ev)
		}
	}
	return failures
}

// indexedInputs filters an event's inputs down to the indexed ones, in order.
func indexedInputs(inputs abi.Arguments) abi.Arguments {
	var indexed abi.Arguments
	for _, arg := range inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}
