package ical

import (
	"bytes"
	"strings"
	"time"

	"staybook/internal/domain/calendar"

	ics "github.com/arran4/golang-ical"
)

const basicDateLayout = "20060102"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads every VEVENT of an iCalendar feed as an all-day blocked span.
// Date-times are truncated to their date, a missing DTEND means one night
// and cancelled events are skipped. An empty or truncated body is malformed,
// never an empty calendar.
func Parse(feed []byte, propertyID int64, now time.Time) ([]*calendar.BlockedInterval, error) {
	feed = bytes.TrimPrefix(feed, utf8BOM)
	if err := checkStructure(feed); err != nil {
		return nil, err
	}
	cal, err := ics.ParseCalendar(bytes.NewReader(feed))
	if err != nil {
		return nil, &SyncError{Reason: ReasonMalformed, Err: err}
	}

	events := cal.Events()
	intervals := make([]*calendar.BlockedInterval, 0, len(events))
	for i, ev := range events {
		if ev == nil {
			return nil, malformed("event %d: unterminated VEVENT", i)
		}
		if status := propValue(ev, ics.ComponentPropertyStatus); strings.EqualFold(status, "CANCELLED") {
			continue
		}

		start, err := eventDate(ev, ics.ComponentPropertyDtStart)
		if err != nil {
			return nil, malformed("event %d: DTSTART: %w", i, err)
		}
		end := start.AddDays(1)
		if ev.GetProperty(ics.ComponentPropertyDtEnd) != nil {
			if end, err = eventDate(ev, ics.ComponentPropertyDtEnd); err != nil {
				return nil, malformed("event %d: DTEND: %w", i, err)
			}
		}
		if !start.Before(end) {
			return nil, malformed("event %d: DTEND %s is not after DTSTART %s", i, end, start)
		}

		uid := strings.TrimSpace(ev.Id())
		if uid == "" {
			uid = start.String() + "/" + end.String()
		}
		var summary *string
		if s := propValue(ev, ics.ComponentPropertySummary); s != "" {
			summary = &s
		}

		interval, err := calendar.NewImportedInterval(propertyID, start, end, uid, summary, now)
		if err != nil {
			return nil, malformed("event %d: %w", i, err)
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

// checkStructure requires the body to open with BEGIN:VCALENDAR, close with
// END:VCALENDAR and balance its VEVENT blocks. Folded lines start with
// whitespace and are never component delimiters.
func checkStructure(feed []byte) error {
	var first, last string
	var opened, closed int
	for _, raw := range bytes.Split(feed, []byte("\n")) {
		line := strings.TrimRight(string(raw), "\r")
		if strings.TrimSpace(line) == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		line = strings.ToUpper(strings.TrimSpace(line))
		if first == "" {
			first = line
		}
		last = line
		switch line {
		case "BEGIN:VEVENT":
			opened++
		case "END:VEVENT":
			closed++
		}
	}
	switch {
	case first == "":
		return malformed("empty body")
	case first != "BEGIN:VCALENDAR":
		return malformed("body does not start with BEGIN:VCALENDAR")
	case last != "END:VCALENDAR":
		return malformed("calendar is not terminated by END:VCALENDAR")
	case opened != closed:
		return malformed("%d VEVENT blocks opened, %d closed", opened, closed)
	}
	return nil
}

func eventDate(ev *ics.VEvent, prop ics.ComponentProperty) (calendar.Date, error) {
	value := propValue(ev, prop)
	if len(value) < len(basicDateLayout) {
		return calendar.Date{}, calendar.ErrInvalidDate
	}
	t, err := time.Parse(basicDateLayout, value[:len(basicDateLayout)])
	if err != nil {
		return calendar.Date{}, calendar.ErrInvalidDate
	}
	return calendar.DateOf(t), nil
}

func propValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}
