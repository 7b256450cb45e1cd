package calendar

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidSource        = errors.New("invalid blocked interval source")
	ErrReasonTooLong        = errors.New("reason is too long (max 255 characters)")
	ErrMissingExternalUID   = errors.New("imported interval requires an external uid")
	ErrNotManuallyRemovable = errors.New("only manually blocked dates can be removed")
)

const MaxReasonLength = 255

type Source string

const (
	SourceManual      Source = "manual"
	SourceICalImport  Source = "ical-import"
	SourceReservation Source = "reservation"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceICalImport, SourceReservation:
		return true
	default:
		return false
	}
}

func NewSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", ErrInvalidSource
	}
	return src, nil
}

// BlockedInterval is a span [start, end) during which a property cannot be booked.
type BlockedInterval struct {
	id            uuid.UUID
	propertyID    int64
	span          DateRange
	reason        *string
	source        Source
	externalUID   *string
	reservationID *uuid.UUID
	createdAt     time.Time
}

func NewManualInterval(propertyID int64, start, end Date, reason *string, now time.Time) (*BlockedInterval, error) {
	span, err := NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	reason, err = normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	return &BlockedInterval{
		id:         uuid.New(),
		propertyID: propertyID,
		span:       span,
		reason:     reason,
		source:     SourceManual,
		createdAt:  now.UTC(),
	}, nil
}

func NewImportedInterval(propertyID int64, start, end Date, uid string, summary *string, now time.Time) (*BlockedInterval, error) {
	span, err := NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrMissingExternalUID
	}
	summary, err = normalizeReason(summary)
	if err != nil {
		// Feed summaries are informational; keep the block and drop the text.
		summary = nil
	}
	return &BlockedInterval{
		id:          uuid.New(),
		propertyID:  propertyID,
		span:        span,
		reason:      summary,
		source:      SourceICalImport,
		externalUID: &uid,
		createdAt:   now.UTC(),
	}, nil
}

func NewReservationInterval(propertyID int64, stay DateRange, reservationID uuid.UUID, now time.Time) *BlockedInterval {
	reason := "Reservation"
	return &BlockedInterval{
		id:            uuid.New(),
		propertyID:    propertyID,
		span:          stay,
		reason:        &reason,
		source:        SourceReservation,
		reservationID: &reservationID,
		createdAt:     now.UTC(),
	}
}

func ReconstructBlockedInterval(
	id uuid.UUID,
	propertyID int64,
	span DateRange,
	reason *string,
	source Source,
	externalUID *string,
	reservationID *uuid.UUID,
	createdAt time.Time,
) *BlockedInterval {
	return &BlockedInterval{
		id:            id,
		propertyID:    propertyID,
		span:          span,
		reason:        reason,
		source:        source,
		externalUID:   externalUID,
		reservationID: reservationID,
		createdAt:     createdAt,
	}
}

func (b *BlockedInterval) EnsureRemovable() error {
	if b.source != SourceManual {
		return ErrNotManuallyRemovable
	}
	return nil
}

func (b *BlockedInterval) ID() uuid.UUID             { return b.id }
func (b *BlockedInterval) PropertyID() int64         { return b.propertyID }
func (b *BlockedInterval) Span() DateRange           { return b.span }
func (b *BlockedInterval) Start() Date               { return b.span.checkIn }
func (b *BlockedInterval) End() Date                 { return b.span.checkOut }
func (b *BlockedInterval) Reason() *string           { return b.reason }
func (b *BlockedInterval) Source() Source            { return b.source }
func (b *BlockedInterval) ExternalUID() *string      { return b.externalUID }
func (b *BlockedInterval) ReservationID() *uuid.UUID { return b.reservationID }
func (b *BlockedInterval) CreatedAt() time.Time      { return b.createdAt }

func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &trimmed, nil
}
