// Package availability decides which calendar days can be booked. Blocked
// days come from a pluggable Source so the fixed storefront block-list, the
// bookings table, and the Redis cache are interchangeable.
package availability

import (
	"context"
	"time"
)

type Source interface {
	// BlockedDays returns the non-bookable day-of-month numbers for the
	// given voyage and displayed month. voyageID 0 means "any voyage".
	BlockedDays(ctx context.Context, voyageID int64, year int, month time.Month) (map[int]bool, error)
}

// BlockList is the fixed day-of-month block-list carried over from the
// storefront. The same numbers apply to every displayed month and voyage;
// it is a stand-in for a real availability feed, not per-month data.
type BlockList struct {
	Days []int
}

func NewBlockList() BlockList {
	return BlockList{Days: []int{5, 6, 12, 13, 20, 27}}
}

func (b BlockList) BlockedDays(_ context.Context, _ int64, _ int, _ time.Month) (map[int]bool, error) {
	out := make(map[int]bool, len(b.Days))
	for _, d := range b.Days {
		out[d] = true
	}
	return out, nil
}

// MultiSource unions blocked days from several sources. Any source
// failing fails the lookup; a day blocked anywhere stays blocked.
type MultiSource []Source

func (ms MultiSource) BlockedDays(ctx context.Context, voyageID int64, year int, month time.Month) (map[int]bool, error) {
	out := map[int]bool{}
	for _, s := range ms {
		days, err := s.BlockedDays(ctx, voyageID, year, month)
		if err != nil {
			return nil, err
		}
		for d := range days {
			out[d] = true
		}
	}
	return out, nil
}
