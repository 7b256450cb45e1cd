package queries

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrWindowTooLarge   = errors.New("availability window is too large")
	ErrWindowOrder      = errors.New("window end must be after its start")
)

type PropertyReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*property.Property, error)
}

type BlockedIntervalReadStore interface {
	ListInWindow(ctx context.Context, propertyID int64, from, to calendar.Date) ([]*calendar.BlockedInterval, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*calendar.BlockedInterval, error)
}

// CalendarEncoder renders intervals as an iCalendar document.
type CalendarEncoder interface {
	Encode(intervals []*calendar.BlockedInterval) []byte
}

type AvailabilityWindow struct {
	From *calendar.Date
	To   *calendar.Date
}

type PriceRequest struct {
	CheckIn  calendar.Date
	CheckOut calendar.Date
	Guests   *int
}

type PropertyQueries interface {
	// Availability lists the blocked spans and disabled dates of [from, to).
	Availability(ctx context.Context, slug string, window AvailabilityWindow) (*AvailabilityView, error)
	Price(ctx context.Context, slug string, req PriceRequest) (*PriceView, error)
	ExportCalendar(ctx context.Context, slug string) ([]byte, error)
	// BlockedDates is the admin listing and includes past and reason data.
	BlockedDates(ctx context.Context, slug string) ([]BlockedIntervalView, error)
}

type propertyQueriesImpl struct {
	properties PropertyReadStore
	intervals  BlockedIntervalReadStore
	encoder    CalendarEncoder
	schedule   pricing.Schedule
	clock      clock.Clock
	location   *time.Location
	horizon    int
	maxWindow  int
}

type PropertyQueriesConfig struct {
	Schedule            pricing.Schedule
	Location            *time.Location
	AvailabilityHorizon int
	MaxWindowDays       int
}

func NewPropertyQueries(
	properties PropertyReadStore,
	intervals BlockedIntervalReadStore,
	encoder CalendarEncoder,
	clk clock.Clock,
	cfg PropertyQueriesConfig,
) PropertyQueries {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &propertyQueriesImpl{
		properties: properties,
		intervals:  intervals,
		encoder:    encoder,
		schedule:   cfg.Schedule,
		clock:      clk,
		location:   loc,
		horizon:    cfg.AvailabilityHorizon,
		maxWindow:  cfg.MaxWindowDays,
	}
}

func (q *propertyQueriesImpl) Availability(ctx context.Context, slug string, window AvailabilityWindow) (*AvailabilityView, error) {
	prop, err := q.activeProperty(ctx, slug)
	if err != nil {
		return nil, err
	}

	today := calendar.Today(q.clock.Now(), q.location)
	from, to, err := q.resolveWindow(today, window)
	if err != nil {
		return nil, err
	}

	intervals, err := q.intervals.ListInWindow(ctx, prop.ID(), from, to)
	if err != nil {
		return nil, err
	}

	blocker := calendar.NewBlocker(intervals, today)
	blocked := make([]BlockedIntervalView, 0, len(intervals))
	for _, iv := range intervals {
		blocked = append(blocked, NewBlockedIntervalView(iv, false))
	}
	disabled := blocker.DisabledDates(from, to)
	if disabled == nil {
		disabled = []calendar.Date{}
	}

	rules := prop.StayRules()
	return &AvailabilityView{
		PropertyID:    prop.ID(),
		From:          from,
		To:            to,
		BlockedDates:  blocked,
		DisabledDates: disabled,
		MinNights:     rules.MinNights,
		MaxNights:     rules.MaxNights,
	}, nil
}

func (q *propertyQueriesImpl) resolveWindow(today calendar.Date, window AvailabilityWindow) (calendar.Date, calendar.Date, error) {
	from := today
	if window.From != nil {
		from = *window.From
	}
	to := from.AddDays(q.horizon)
	if window.To != nil {
		to = *window.To
	}
	if !from.Before(to) {
		return calendar.Date{}, calendar.Date{}, errs.NewValidation("to", ErrWindowOrder)
	}
	if q.maxWindow > 0 && from.DaysUntil(to) > q.maxWindow {
		return calendar.Date{}, calendar.Date{}, errs.NewValidation("to", ErrWindowTooLarge)
	}
	return from, to, nil
}

func (q *propertyQueriesImpl) Price(ctx context.Context, slug string, req PriceRequest) (*PriceView, error) {
	prop, err := q.activeProperty(ctx, slug)
	if err != nil {
		return nil, err
	}

	stay, err := calendar.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.NewValidation("checkOut", err)
	}
	if err := prop.StayRules().Check(stay.Nights()); err != nil {
		return nil, errs.NewValidation("checkOut", err)
	}
	if req.Guests != nil {
		if err := prop.AcceptsGuests(*req.Guests); err != nil {
			return nil, errs.NewValidation("guests", err)
		}
	}

	breakdown, err := prop.Quote(q.schedule, stay)
	if err != nil {
		return nil, err
	}
	view := NewPriceView(pricing.NewQuote(breakdown))
	return &view, nil
}

func (q *propertyQueriesImpl) ExportCalendar(ctx context.Context, slug string) ([]byte, error) {
	prop, err := q.activeProperty(ctx, slug)
	if err != nil {
		return nil, err
	}
	intervals, err := q.intervals.ListByProperty(ctx, prop.ID())
	if err != nil {
		return nil, err
	}
	return q.encoder.Encode(intervals), nil
}

func (q *propertyQueriesImpl) BlockedDates(ctx context.Context, slug string) ([]BlockedIntervalView, error) {
	prop, err := q.findProperty(ctx, slug)
	if err != nil {
		return nil, err
	}
	intervals, err := q.intervals.ListByProperty(ctx, prop.ID())
	if err != nil {
		return nil, err
	}
	views := make([]BlockedIntervalView, 0, len(intervals))
	for _, iv := range intervals {
		views = append(views, NewBlockedIntervalView(iv, true))
	}
	return views, nil
}

func (q *propertyQueriesImpl) activeProperty(ctx context.Context, slug string) (*property.Property, error) {
	prop, err := q.findProperty(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !prop.IsActive() {
		return nil, ErrPropertyNotFound
	}
	return prop, nil
}

func (q *propertyQueriesImpl) findProperty(ctx context.Context, slug string) (*property.Property, error) {
	prop, err := q.properties.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return prop, nil
}
