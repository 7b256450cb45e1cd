package booking

import (
	"errors"
	"strings"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoteTooLong     = errors.New("note is too long")
	ErrNotFound        = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrQuoteNightsDiff = errors.New("price quote does not match the stay")
)

const maxNoteLength = 2000

type Reservation struct {
	id               uuid.UUID
	propertyID       int64
	stay             calendar.DateRange
	guest            Guest
	quote            pricing.Quote
	confirmationCode string
	status           ReservationStatus
	note             *string
	createdAt        time.Time
}

func NewReservation(
	services *Services,
	propertyID int64,
	stay calendar.DateRange,
	guest Guest,
	quote pricing.Quote,
	note *string,
) (*Reservation, error) {
	if quote.Nights != stay.Nights() {
		return nil, ErrQuoteNightsDiff
	}
	n, err := normalizeText(note, maxNoteLength)
	if err != nil {
		return nil, errs.NewValidation("message", ErrNoteTooLong)
	}
	code, err := services.Codes.Generate(KindReservation)
	if err != nil {
		return nil, errs.Wrap(err, "generate confirmation code")
	}
	return &Reservation{
		id:               uuid.New(),
		propertyID:       propertyID,
		stay:             stay,
		guest:            guest,
		quote:            quote,
		confirmationCode: code,
		status:           ReservationConfirmed,
		note:             n,
		createdAt:        services.Clock.Now(),
	}, nil
}

// BlockedInterval is the calendar entry that keeps the stay off the market.
func (r *Reservation) BlockedInterval() *calendar.BlockedInterval {
	return calendar.NewReservationInterval(r.propertyID, r.stay, r.id, r.createdAt)
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) PropertyID() int64         { return r.propertyID }
func (r *Reservation) Stay() calendar.DateRange  { return r.stay }
func (r *Reservation) Guest() Guest              { return r.guest }
func (r *Reservation) Quote() pricing.Quote      { return r.quote }
func (r *Reservation) CouponCode() *string       { return r.quote.CouponCode }
func (r *Reservation) ConfirmationCode() string  { return r.confirmationCode }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) Note() *string             { return r.note }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }

func normalizeText(s *string, limit int) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if len([]rune(v)) > limit {
		return nil, errors.New("text too long")
	}
	return &v, nil
}
