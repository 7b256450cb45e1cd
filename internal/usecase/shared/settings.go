package shared

import (
	"fmt"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/config"
)

// BookingSettings are the calendar rules shared by the read and write side.
type BookingSettings struct {
	Location            *time.Location
	IdempotencyTTL      time.Duration
	AvailabilityHorizon int
	MaxWindowDays       int
}

func NewBookingSettings(cfg config.BookingConfig) (BookingSettings, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return BookingSettings{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	return BookingSettings{
		Location:            loc,
		IdempotencyTTL:      cfg.IdempotencyTTL,
		AvailabilityHorizon: cfg.AvailabilityHorizon,
		MaxWindowDays:       cfg.MaxWindowDays,
	}, nil
}

func (s BookingSettings) Today(now time.Time) calendar.Date {
	return calendar.Today(now, s.Location)
}
