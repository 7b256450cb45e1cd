package commands

import (
	"context"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// CalendarFeed downloads an external iCalendar feed and parses it into
// intervals. Failures come back as *ical.SyncError.
type CalendarFeed interface {
	Import(ctx context.Context, url string, propertyID int64, now time.Time) ([]*calendar.BlockedInterval, error)
}

// EventPublisher delivers one outbox event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic, eventID, eventType string, payload []byte) error
}

// BookingViews reads a committed booking back for the response.
type BookingViews interface {
	FindReservationByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	FindInquiryByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}
