package property

import (
	"errors"
	"fmt"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/pricing"
)

var (
	ErrNotFound       = errors.New("property not found")
	ErrInvalidSlug    = errors.New("invalid property slug")
	ErrNegativePrice  = errors.New("property prices cannot be negative")
	ErrTooManyGuests  = errors.New("guest count exceeds the property maximum")
	ErrNoCalendarFeed = errors.New("property has no iCal URL configured")
)

// Fields carries the stored attributes when rebuilding a Property.
type Fields struct {
	ID               int64
	Slug             string
	Name             LocalizedText
	Description      LocalizedText
	Address          LocalizedText
	PricePerNight    int64
	CleaningFee      int64
	Currency         string
	MinNights        int
	MaxNights        *int
	MaxGuests        *int
	ICalURL          *string
	ICalLastSyncedAt *time.Time
	InstantBooking   bool
	IsActive         bool
	IsFeatured       bool
}

type Property struct {
	id               int64
	slug             string
	name             LocalizedText
	description      LocalizedText
	address          LocalizedText
	pricePerNight    int64
	cleaningFee      int64
	currency         string
	rules            calendar.StayRules
	maxGuests        *int
	icalURL          *string
	icalLastSyncedAt *time.Time
	instantBooking   bool
	isActive         bool
	isFeatured       bool
}

func Reconstruct(f Fields) (*Property, error) {
	if !slugRegex.MatchString(f.Slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, f.Slug)
	}
	if f.PricePerNight < 0 || f.CleaningFee < 0 {
		return nil, ErrNegativePrice
	}
	rules, err := calendar.NewStayRules(f.MinNights, f.MaxNights)
	if err != nil {
		return nil, err
	}
	return &Property{
		id:               f.ID,
		slug:             f.Slug,
		name:             f.Name,
		description:      f.Description,
		address:          f.Address,
		pricePerNight:    f.PricePerNight,
		cleaningFee:      f.CleaningFee,
		currency:         f.Currency,
		rules:            rules,
		maxGuests:        f.MaxGuests,
		icalURL:          f.ICalURL,
		icalLastSyncedAt: f.ICalLastSyncedAt,
		instantBooking:   f.InstantBooking,
		isActive:         f.IsActive,
		isFeatured:       f.IsFeatured,
	}, nil
}

func (p *Property) AcceptsGuests(count int) error {
	if p.maxGuests != nil && count > *p.maxGuests {
		return fmt.Errorf("%w (%d)", ErrTooManyGuests, *p.maxGuests)
	}
	return nil
}

// CanInstantBook reports whether a request for stay dates becomes a
// reservation instead of an inquiry.
func (p *Property) CanInstantBook() bool {
	return p.isActive && p.instantBooking
}

func (p *Property) CalendarFeed() (string, error) {
	if p.icalURL == nil || *p.icalURL == "" {
		return "", ErrNoCalendarFeed
	}
	return *p.icalURL, nil
}

func (p *Property) Quote(schedule pricing.Schedule, stay calendar.DateRange) (pricing.Breakdown, error) {
	return schedule.Quote(p.pricePerNight, p.cleaningFee, p.currency, stay)
}

func (p *Property) ID() int64                     { return p.id }
func (p *Property) Slug() string                  { return p.slug }
func (p *Property) Name() LocalizedText           { return p.name }
func (p *Property) Description() LocalizedText    { return p.description }
func (p *Property) Address() LocalizedText        { return p.address }
func (p *Property) PricePerNight() int64          { return p.pricePerNight }
func (p *Property) CleaningFee() int64            { return p.cleaningFee }
func (p *Property) Currency() string              { return p.currency }
func (p *Property) StayRules() calendar.StayRules { return p.rules }
func (p *Property) MaxGuests() *int               { return p.maxGuests }
func (p *Property) ICalURL() *string              { return p.icalURL }
func (p *Property) ICalLastSyncedAt() *time.Time  { return p.icalLastSyncedAt }
func (p *Property) InstantBooking() bool          { return p.instantBooking }
func (p *Property) IsActive() bool                { return p.isActive }
func (p *Property) IsFeatured() bool              { return p.isFeatured }
