// Package journal records split operation outcomes in a local bbolt database.
// It exists for operators running recurring ensure/execute loops: the journal
// answers "what did we last do to this split, and when" without an indexer.
//
// The library layer never writes here on its own; recording is the caller's
// choice.
package journal

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.etcd.io/bbolt"
)

var (
	bucketRecords = []byte("records")
	bucketBySplit = []byte("records_by_split")
)

// Kind distinguishes the recorded operation.
type Kind string

const (
	KindEnsure  Kind = "ensure"
	KindExecute Kind = "execute"
)

// Record is one journaled operation outcome.
type Record struct {
	Kind    Kind
	ChainID uint64
	Split   common.Address
	TxHash  common.Hash // zero when no transaction was sent
	Status  string      // CREATED, NO_CHANGE, EXECUTED, SKIPPED, FAILED
	Reason  string      // classification on SKIPPED and FAILED
	Message string
	At      time.Time
}

// Journal wraps a bbolt database of operation records.
type Journal struct {
	db *bbolt.DB
}

// Open opens or creates the journal database at dbPath.
// The parent directory is created if it does not exist.
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("journal: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("journal: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketBySplit} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("journal: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: create buckets: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error { return j.db.Close() }

// seqKey encodes a sequence number as an 8-byte big-endian key so records
// iterate in insertion order.
func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Append stores a record at the end of the journal. A zero At timestamp is
// filled in with the current time.
func (j *Journal) Append(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParam)
	}
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}

	return j.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("journal: next sequence: %w", err)
		}

		data, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("journal: encode record: %w", err)
		}
		key := seqKey(seq)
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("journal: put record: %w", err)
		}

		// Composite key: split address + sequence, for prefix scanning.
		compositeKey := make([]byte, common.AddressLength+8)
		copy(compositeKey, rec.Split.Bytes())
		copy(compositeKey[common.AddressLength:], key)
		if err := tx.Bucket(bucketBySplit).Put(compositeKey, key); err != nil {
			return fmt.Errorf("journal: put split index: %w", err)
		}
		return nil
	})
}

// BySplit returns all records for one split, oldest first.
func (j *Journal) BySplit(split common.Address) ([]*Record, error) {
	prefix := split.Bytes()
	var records []*Record
	err := j.db.View(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(bucketBySplit)
		recs := tx.Bucket(bucketRecords)

		c := idx.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			data := recs.Get(v)
			if data == nil {
				continue // stale index entry
			}
			var rec Record
			if err := decodeGob(data, &rec); err != nil {
				return fmt.Errorf("journal: decode record: %w", err)
			}
			records = append(records, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Last returns the most recent record for one split, or ErrNotFound when the
// split has never been journaled.
func (j *Journal) Last(split common.Address) (*Record, error) {
	records, err := j.BySplit(split)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, split.Hex())
	}
	return records[len(records)-1], nil
}

// Recent returns up to n records across all splits, newest first.
func (j *Journal) Recent(n int) ([]*Record, error) {
	var records []*Record
	err := j.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketRecords).Cursor()
		for k, v := c.Last(); k != nil && len(records) < n; k, v = c.Prev() {
			var rec Record
			if err := decodeGob(v, &rec); err != nil {
				return fmt.Errorf("journal: decode record: %w", err)
			}
			records = append(records, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Len returns the total number of journaled records.
func (j *Journal) Len() (int, error) {
	var n int
	err := j.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketRecords).Stats().KeyN
		return nil
	})
	return n, err
}
