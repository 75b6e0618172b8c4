package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	splitA = common.HexToAddress("0x1111111111111111111111111111111111111111")
	splitB = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "ops", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, j.Close())
}

func TestAppendAndBySplit(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, j.Append(&Record{
		Kind: KindEnsure, ChainID: 8453, Split: splitA, Status: "CREATED",
	}))
	require.NoError(t, j.Append(&Record{
		Kind: KindExecute, ChainID: 8453, Split: splitA, Status: "EXECUTED",
	}))
	require.NoError(t, j.Append(&Record{
		Kind: KindExecute, ChainID: 8453, Split: splitB, Status: "SKIPPED", Reason: "no_pending_funds",
	}))

	records, err := j.BySplit(splitA)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, KindEnsure, records[0].Kind)
	assert.Equal(t, KindExecute, records[1].Kind)
	assert.False(t, records[0].At.IsZero(), "timestamp filled in on append")

	records, err = j.BySplit(splitB)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "no_pending_funds", records[0].Reason)
}

func TestBySplitEmptyForUnknown(t *testing.T) {
	j := openTestJournal(t)

	records, err := j.BySplit(splitA)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendNilRecord(t *testing.T) {
	j := openTestJournal(t)
	assert.ErrorIs(t, j.Append(nil), ErrNilParam)
}

func TestAppendKeepsExplicitTimestamp(t *testing.T) {
	j := openTestJournal(t)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.Append(&Record{Kind: KindEnsure, Split: splitA, Status: "NO_CHANGE", At: at}))

	rec, err := j.Last(splitA)
	require.NoError(t, err)
	assert.True(t, rec.At.Equal(at))
}

func TestLast(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Last(splitA)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, j.Append(&Record{Kind: KindEnsure, Split: splitA, Status: "CREATED"}))
	require.NoError(t, j.Append(&Record{Kind: KindExecute, Split: splitA, Status: "FAILED", Reason: "transaction_reverted"}))

	rec, err := j.Last(splitA)
	require.NoError(t, err)
	assert.Equal(t, KindExecute, rec.Kind)
	assert.Equal(t, "transaction_reverted", rec.Reason)
}

func TestRecentNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for i, status := range []string{"CREATED", "EXECUTED", "SKIPPED"} {
		split := splitA
		if i%2 == 1 {
			split = splitB
		}
		require.NoError(t, j.Append(&Record{Kind: KindExecute, Split: split, Status: status}))
	}

	records, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SKIPPED", records[0].Status)
	assert.Equal(t, "EXECUTED", records[1].Status)

	all, err := j.Recent(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := j.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(&Record{Kind: KindEnsure, Split: splitA, Status: "CREATED", TxHash: common.HexToHash("0xbeef")}))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	rec, err := j.Last(splitA)
	require.NoError(t, err)
	assert.Equal(t, "CREATED", rec.Status)
	assert.Equal(t, common.HexToHash("0xbeef"), rec.TxHash)
}
