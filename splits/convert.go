package splits

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/cascade-protocol/splits-go/contracts"
)

// ConvertRecipients converts percentage shares to the protocol's
// fee-adjusted basis points (share * 99), preserving order. The share sum is
// checked before any element is converted; on mismatch no partial output is
// produced.
func ConvertRecipients(recipients []Recipient) ([]contracts.SplitRecipient, error) {
	total := 0
	for _, r := range recipients {
		total += r.Share
	}
	if total != ShareTotal {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShareSum, total)
	}

	encoded := make([]contracts.SplitRecipient, len(recipients))
	for i, r := range recipients {
		encoded[i] = contracts.SplitRecipient{
			Addr:          r.Address,
			PercentageBps: uint16(r.Share * bpsPerShare),
		}
	}
	return encoded, nil
}

// ValidateRecipientCount checks the count against [MinRecipients, MaxRecipients].
func ValidateRecipientCount(n int) error {
	if n < MinRecipients || n > MaxRecipients {
		return fmt.Errorf("%w: expected %d-%d, got %d", ErrRecipientCount, MinRecipients, MaxRecipients, n)
	}
	return nil
}

// validateEncodedTotal checks that encoded basis points sum to RequiredTotalBps.
func validateEncodedTotal(encoded []contracts.SplitRecipient) error {
	total := 0
	for _, r := range encoded {
		total += int(r.PercentageBps)
	}
	if total != RequiredTotalBps {
		return fmt.Errorf("%w: got %d", ErrInvalidBpsTotal, total)
	}
	return nil
}

// NormalizeUniqueID fits an identifier into the contract's bytes32 shape:
// shorter inputs are zero-padded on the right, longer inputs truncated to
// the first 32 bytes. A 32-byte input passes through unchanged.
func NormalizeUniqueID(id []byte) [32]byte {
	var out [32]byte
	copy(out[:], id)
	return out
}

// DeriveUniqueID produces a stable 32-byte identifier from human-readable
// parts (keccak256 over the colon-joined parts). Useful when callers key
// splits by names rather than raw bytes: the same parts always address the
// same split.
func DeriveUniqueID(parts ...string) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{':'})
		}
		h.Write([]byte(p))
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
