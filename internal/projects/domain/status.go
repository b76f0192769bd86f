package domain

import "strings"

// Bid statuses surface through the same normalizer because legacy backends
// mixed the two vocabularies on the wire.
const (
	BidStatusPending  = "Pending"
	BidStatusAccepted = "Accepted"
	BidStatusRejected = "Rejected"
)

// statusAliases maps every known raw representation, lowercased, to its
// canonical value: numeric legacy codes, canonical names in any case, and
// bid synonyms from older backends.
var statusAliases = map[string]string{
	"0": StatusDraft,
	"1": StatusPublished,
	"2": StatusInBidding,
	"3": StatusBidSelected,
	"4": StatusInProgress,
	"5": StatusCompleted,
	"6": StatusCancelled,

	"draft":       StatusDraft,
	"published":   StatusPublished,
	"inbidding":   StatusInBidding,
	"bidselected": StatusBidSelected,
	"inprogress":  StatusInProgress,
	"completed":   StatusCompleted,
	"cancelled":   StatusCancelled,

	"pending":     BidStatusPending,
	"submitted":   BidStatusPending,
	"underreview": BidStatusPending,
	"accepted":    BidStatusAccepted,
	"rejected":    BidStatusRejected,
	"withdrawn":   BidStatusRejected,
}

// NormalizeStatus maps any raw status representation to its canonical value.
// It is a total function: unrecognized input passes through unchanged so the
// caller can render an "Unknown" badge instead of crashing, and it is
// idempotent on canonical values.
func NormalizeStatus(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := statusAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}
