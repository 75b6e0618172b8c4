package contracts

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAuthority = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testToken     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testAlice     = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testBob       = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func testRecipients() []SplitRecipient {
	return []SplitRecipient{
		{Addr: testAlice, PercentageBps: 5940},
		{Addr: testBob, PercentageBps: 3960},
	}
}

func TestPackPredictSplitAddress(t *testing.T) {
	var uniqueID [32]byte
	copy(uniqueID[:], "my-split")

	data, err := PackPredictSplitAddress(testAuthority, testToken, uniqueID, testRecipients())
	require.NoError(t, err)

	// Selector followed by encoded arguments.
	assert.Equal(t, FactoryABI.Methods["predictSplitAddress"].ID, data[:4])
	assert.Greater(t, len(data), 4)

	// createSplitConfig shares the argument shape but not the selector.
	create, err := PackCreateSplitConfig(testAuthority, testToken, uniqueID, testRecipients())
	require.NoError(t, err)
	assert.Equal(t, data[4:], create[4:])
	assert.NotEqual(t, data[:4], create[:4])
}

func TestUnpackPredictSplitAddress(t *testing.T) {
	predicted := common.HexToAddress("0x5555555555555555555555555555555555555555")
	out, err := FactoryABI.Methods["predictSplitAddress"].Outputs.Pack(predicted)
	require.NoError(t, err)

	got, err := UnpackPredictSplitAddress(out)
	require.NoError(t, err)
	assert.Equal(t, predicted, got)
}

func TestUnpackRecipients(t *testing.T) {
	out, err := SplitABI.Methods["getRecipients"].Outputs.Pack(testRecipients())
	require.NoError(t, err)

	got, err := UnpackRecipients(out)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, testAlice, got[0].Addr)
	assert.Equal(t, uint16(5940), got[0].PercentageBps)
	assert.Equal(t, uint16(3960), got[1].PercentageBps)
}

func TestUnpackScalarResults(t *testing.T) {
	out, err := SplitABI.Methods["hasPendingFunds"].Outputs.Pack(true)
	require.NoError(t, err)
	pending, err := UnpackBool("hasPendingFunds", out)
	require.NoError(t, err)
	assert.True(t, pending)

	out, err = SplitABI.Methods["getBalance"].Outputs.Pack(big.NewInt(100_000_000))
	require.NoError(t, err)
	balance, err := UnpackBigInt("getBalance", out)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100_000_000), balance)

	out, err = SplitABI.Methods["authority"].Outputs.Pack(testAuthority)
	require.NoError(t, err)
	authority, err := UnpackAddress("authority", out)
	require.NoError(t, err)
	assert.Equal(t, testAuthority, authority)
}

func TestUnpackPreviewExecution(t *testing.T) {
	out, err := SplitABI.Methods["previewExecution"].Outputs.Pack(
		[]*big.Int{big.NewInt(59_400_000), big.NewInt(39_600_000)},
		big.NewInt(1_000_000),
		big.NewInt(100_000_000),
		[]*big.Int{big.NewInt(0), big.NewInt(0)},
		big.NewInt(0),
	)
	require.NoError(t, err)

	preview, err := UnpackPreviewExecution(out)
	require.NoError(t, err)
	require.Len(t, preview.RecipientAmounts, 2)
	assert.Equal(t, big.NewInt(59_400_000), preview.RecipientAmounts[0])
	assert.Equal(t, big.NewInt(39_600_000), preview.RecipientAmounts[1])
	assert.Equal(t, big.NewInt(1_000_000), preview.ProtocolFee)
	assert.Equal(t, big.NewInt(100_000_000), preview.Available)

	// Decoded zeros carry an empty (non-nil) word slice, so compare by value.
	assert.Zero(t, preview.PendingProtocolAmount.Sign())
	require.Len(t, preview.PendingRecipientAmounts, 2)
	for _, amt := range preview.PendingRecipientAmounts {
		assert.Zero(t, amt.Sign())
	}
}

func TestUnpackMalformedData(t *testing.T) {
	_, err := UnpackBigInt("getBalance", []byte{0x01, 0x02})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnpackFailed)
}

func TestParseSplitConfigCreated(t *testing.T) {
	var uniqueID [32]byte
	copy(uniqueID[:], "created-split")

	ev := FactoryABI.Events["SplitConfigCreated"]
	data, err := ev.Inputs.NonIndexed().Pack(uniqueID, testRecipients())
	require.NoError(t, err)

	split := common.HexToAddress("0x6666666666666666666666666666666666666666")
	log := types.Log{
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(split.Bytes()),
			common.BytesToHash(testAuthority.Bytes()),
			common.BytesToHash(testToken.Bytes()),
		},
		Data: data,
	}

	parsed, err := ParseSplitConfigCreated(log)
	require.NoError(t, err)
	assert.Equal(t, split, parsed.Split)
	assert.Equal(t, testAuthority, parsed.Authority)
	assert.Equal(t, testToken, parsed.Token)
	assert.Equal(t, uniqueID, parsed.UniqueId)
	require.Len(t, parsed.Recipients, 2)
	assert.Equal(t, uint16(5940), parsed.Recipients[0].PercentageBps)
}

func TestParseSplitExecutedWrongTopic(t *testing.T) {
	log := types.Log{Topics: []common.Hash{SplitABI.Events["TransferFailed"].ID}}
	_, err := ParseSplitExecuted(log)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEventMismatch)
}

func TestEventsFromReceipt(t *testing.T) {
	execEv := SplitABI.Events["SplitExecuted"]
	execData, err := execEv.Inputs.NonIndexed().Pack(
		big.NewInt(100_000_000), big.NewInt(1_000_000), big.NewInt(0), big.NewInt(0),
	)
	require.NoError(t, err)

	failEv := SplitABI.Events["TransferFailed"]
	failData, err := failEv.Inputs.NonIndexed().Pack(big.NewInt(39_600_000), false)
	require.NoError(t, err)

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Topics: []common.Hash{failEv.ID, common.BytesToHash(testBob.Bytes())}, Data: failData},
			{Topics: []common.Hash{execEv.ID}, Data: execData},
		},
	}

	executed := ExecutedEventFromReceipt(receipt)
	require.NotNil(t, executed)
	assert.Equal(t, big.NewInt(100_000_000), executed.TotalAmount)
	assert.Equal(t, big.NewInt(1_000_000), executed.ProtocolFee)

	failures := FailedTransfersFromReceipt(receipt)
	require.Len(t, failures, 1)
	assert.Equal(t, testBob, failures[0].Recipient)
	assert.Equal(t, big.NewInt(39_600_000), failures[0].Amount)
	assert.False(t, failures[0].IsProtocol)

	// Creation receipt with no matching logs.
	assert.Nil(t, CreatedEventFromReceipt(receipt))
}
