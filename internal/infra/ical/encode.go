package ical

import (
	"sort"

	"staybook/internal/domain/calendar"

	ics "github.com/arran4/golang-ical"
)

const defaultSummary = "Not available"

// Encoder renders blocked intervals as a publishable iCalendar feed.
type Encoder struct {
	productID string
	uidDomain string
}

func NewEncoder(productID, uidDomain string) *Encoder {
	return &Encoder{productID: productID, uidDomain: uidDomain}
}

// Encode is byte-stable for unchanged input: events are sorted by
// (start, end, id) and DTSTAMP is the interval creation time.
func (e *Encoder) Encode(intervals []*calendar.BlockedInterval) []byte {
	sorted := make([]*calendar.BlockedInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start().Equal(b.Start()) {
			return a.Start().Before(b.Start())
		}
		if !a.End().Equal(b.End()) {
			return a.End().Before(b.End())
		}
		return a.ID().String() < b.ID().String()
	})

	cal := ics.NewCalendar()
	cal.SetProductId(e.productID)
	cal.SetMethod(ics.MethodPublish)

	for _, b := range sorted {
		ev := cal.AddEvent(b.ID().String() + "@" + e.uidDomain)
		ev.SetDtStampTime(b.CreatedAt().UTC())
		ev.SetAllDayStartAt(b.Start().Time())
		ev.SetAllDayEndAt(b.End().Time())
		summary := defaultSummary
		if r := b.Reason(); r != nil {
			summary = *r
		}
		ev.SetSummary(summary)
	}
	return []byte(cal.Serialize())
}
