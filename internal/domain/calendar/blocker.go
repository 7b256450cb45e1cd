package calendar

import (
	"slices"
	"sort"
)

// Blocker answers whether a date can be booked. Blocked intervals are kept as a
// sorted list of merged half-open spans, so a lookup is a binary search rather
// than a scan over every blocked day of a long horizon.
type Blocker struct {
	spans []DateRange
	today Date
}

func NewBlocker(intervals []*BlockedInterval, today Date) *Blocker {
	ranges := make([]DateRange, 0, len(intervals))
	for _, iv := range intervals {
		ranges = append(ranges, iv.Span())
	}
	return NewBlockerFromRanges(ranges, today)
}

func NewBlockerFromRanges(ranges []DateRange, today Date) *Blocker {
	return &Blocker{spans: mergeRanges(ranges), today: today}
}

func mergeRanges(ranges []DateRange) []DateRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b DateRange) int {
		if c := a.checkIn.t.Compare(b.checkIn.t); c != 0 {
			return c
		}
		return a.checkOut.t.Compare(b.checkOut.t)
	})

	merged := []DateRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// Adjacent spans ([a,b) and [b,c)) collapse into one.
		if !r.checkIn.After(last.checkOut) {
			last.checkOut = maxDate(last.checkOut, r.checkOut)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func (b *Blocker) Today() Date { return b.today }

// Intervals returns the merged spans in ascending order.
func (b *Blocker) Intervals() []DateRange {
	return slices.Clone(b.spans)
}

func (b *Blocker) IsBlocked(d Date) bool {
	if d.Before(b.today) {
		return true
	}
	_, ok := b.spanAt(d)
	return ok
}

// spanAt finds the merged span covering d, ignoring the past-date rule.
func (b *Blocker) spanAt(d Date) (DateRange, bool) {
	i := sort.Search(len(b.spans), func(i int) bool {
		return b.spans[i].checkOut.After(d)
	})
	if i < len(b.spans) && !b.spans[i].checkIn.After(d) {
		return b.spans[i], true
	}
	return DateRange{}, false
}

// DisabledDates lists every disabled date in [from, to).
func (b *Blocker) DisabledDates(from, to Date) []Date {
	var out []Date
	for d := from; d.Before(to); d = d.AddDays(1) {
		if b.IsBlocked(d) {
			out = append(out, d)
		}
	}
	return out
}

// FirstConflict returns the earliest night of stay that cannot be booked.
func (b *Blocker) FirstConflict(stay DateRange) (Date, bool) {
	if stay.checkIn.Before(b.today) {
		return stay.checkIn, true
	}
	i := sort.Search(len(b.spans), func(i int) bool {
		return b.spans[i].checkOut.After(stay.checkIn)
	})
	if i < len(b.spans) && b.spans[i].checkIn.Before(stay.checkOut) {
		return maxDate(b.spans[i].checkIn, stay.checkIn), true
	}
	return Date{}, false
}

func (b *Blocker) IsFree(stay DateRange) bool {
	_, conflict := b.FirstConflict(stay)
	return !conflict
}
