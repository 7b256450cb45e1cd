package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/coupon"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingEndpoint = "POST /api/bookings"

var (
	ErrPropertyNotFound        = errs.New("property not found")
	ErrIdempotencyInProgress   = errs.New("a request with this idempotency key is still being processed")
	ErrIdempotencyKeyReused    = errs.New("idempotency key was already used for a different request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type GuestInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Count int     `json:"count"`
}

type BookingInput struct {
	PropertyID int64          `json:"propertyId"`
	CheckIn    *calendar.Date `json:"checkIn,omitempty"`
	CheckOut   *calendar.Date `json:"checkOut,omitempty"`
	Guest      GuestInput     `json:"guest"`
	CouponCode *string        `json:"couponCode,omitempty"`
	Message    *string        `json:"message,omitempty"`
}

func (in BookingInput) stay() (*calendar.DateRange, error) {
	if in.CheckIn == nil || in.CheckOut == nil {
		return nil, nil
	}
	r, err := calendar.NewDateRange(*in.CheckIn, *in.CheckOut)
	if err != nil {
		return nil, errs.NewValidation("checkOut", err)
	}
	return &r, nil
}

type BookingResult struct {
	Kind       booking.Kind
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	// Submit creates a reservation when the property takes instant bookings
	// and both dates are given, and an inquiry otherwise.
	Submit(ctx context.Context, in BookingInput, idempotencyKey *string) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	views    BookingViews
	services *booking.Services
	schedule pricing.Schedule
	settings shared.BookingSettings
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	views BookingViews,
	services *booking.Services,
	schedule pricing.Schedule,
	settings shared.BookingSettings,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		views:    views,
		services: services,
		schedule: schedule,
		settings: settings,
		logger:   logger,
	}
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, in BookingInput, idempotencyKey *string) (*BookingResult, error) {
	var key string
	if idempotencyKey != nil {
		key = *idempotencyKey
		replayed, err := b.claimIdempotencyKey(ctx, key, requestHash(in))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return replayed, nil
		}
	}

	result, err := b.submit(ctx, in, key)
	if err != nil {
		if key != "" {
			b.releaseIdempotencyKey(ctx, key)
		}
		return nil, err
	}
	return result, nil
}

func (b *bookingCommandsImpl) submit(ctx context.Context, in BookingInput, key string) (*BookingResult, error) {
	prop, err := b.uow.CommandReads().PropertyByID(ctx, in.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !prop.IsActive() {
		return nil, ErrPropertyNotFound
	}

	guest, err := booking.NewGuest(in.Guest.Name, in.Guest.Email, in.Guest.Phone, in.Guest.Count)
	if err != nil {
		return nil, err
	}
	if err := prop.AcceptsGuests(guest.Count()); err != nil {
		return nil, errs.NewValidation("guest.count", err)
	}

	stay, err := in.stay()
	if err != nil {
		return nil, err
	}

	if prop.CanInstantBook() && stay != nil {
		return b.reserve(ctx, prop, *stay, guest, in, key)
	}
	return b.inquire(ctx, prop, stay, guest, in, key)
}

func (b *bookingCommandsImpl) reserve(
	ctx context.Context,
	prop *property.Property,
	stay calendar.DateRange,
	guest booking.Guest,
	in BookingInput,
	key string,
) (*BookingResult, error) {
	var reservationID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := b.services.Clock.Now()
		today := b.settings.Today(now)

		locked, err := tx.Properties().LockForUpdate(ctx, tx.DB(), prop.ID())
		if err != nil {
			return err
		}
		intervals, err := tx.BlockedIntervals().ListEndingAfter(ctx, tx.DB(), locked.ID(), today)
		if err != nil {
			return err
		}
		if err := calendar.ValidateRange(stay, calendar.NewBlocker(intervals, today), locked.StayRules()); err != nil {
			return err
		}

		breakdown, err := locked.Quote(b.schedule, stay)
		if err != nil {
			return err
		}
		quote := pricing.NewQuote(breakdown)

		var applied *coupon.Coupon
		if in.CouponCode != nil {
			applied, err = b.lockCoupon(ctx, tx, *in.CouponCode)
			if err != nil {
				return err
			}
			if quote, err = b.applyCoupon(ctx, tx.Reads(), applied, quote, locked.ID(), guest); err != nil {
				return err
			}
		}

		res, err := booking.NewReservation(b.services, locked.ID(), stay, guest, quote, in.Message)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, calendar.ErrDatesUnavailable)
			}
			return err
		}
		if err := tx.BlockedIntervals().Create(ctx, tx.DB(), res.BlockedInterval()); err != nil {
			return err
		}
		if applied != nil {
			if err := tx.Coupons().Redeem(ctx, tx.DB(), applied, res.ID(), guest.Email().Value(), quote.Discount); err != nil {
				return err
			}
		}

		checkIn, checkOut := stay.CheckIn(), stay.CheckOut()
		payload, err := json.Marshal(newBookingEvent(booking.KindReservation, res.ID(), res.ConfirmationCode(), locked, &checkIn, &checkOut, guest, &quote))
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), "reservation_confirmed", booking.EventReservationConfirmed, payload, now); err != nil {
			return err
		}
		if key != "" {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), key, bookingEndpoint, booking.KindReservation, res.ID()); err != nil {
				return err
			}
		}

		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return nil, markBookingErr(err)
	}

	view, err := b.views.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	b.logger.Info("reservation confirmed", "property_id", prop.ID(), "confirmation_code", view.ConfirmationCode)
	return &BookingResult{Kind: booking.KindReservation, Booking: view}, nil
}

func (b *bookingCommandsImpl) inquire(
	ctx context.Context,
	prop *property.Property,
	stay *calendar.DateRange,
	guest booking.Guest,
	in BookingInput,
	key string,
) (*BookingResult, error) {
	var quote *pricing.Quote
	if stay != nil {
		breakdown, err := prop.Quote(b.schedule, *stay)
		if err != nil {
			return nil, err
		}
		q := pricing.NewQuote(breakdown)
		if in.CouponCode != nil {
			reads := b.uow.CommandReads()
			c, err := findCoupon(ctx, reads, *in.CouponCode)
			if err != nil {
				return nil, err
			}
			if q, err = b.applyCoupon(ctx, reads, c, q, prop.ID(), guest); err != nil {
				return nil, err
			}
		}
		quote = &q
	}

	inq, err := booking.NewInquiry(b.services, prop.ID(), in.CheckIn, in.CheckOut, guest, in.Message, quote)
	if err != nil {
		return nil, err
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inquiries().Create(ctx, tx.DB(), inq); err != nil {
			return err
		}
		payload, err := json.Marshal(newBookingEvent(booking.KindInquiry, inq.ID(), inq.ConfirmationCode(), prop, inq.CheckIn(), inq.CheckOut(), guest, inq.Quote()))
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), "inquiry_received", booking.EventInquiryReceived, payload, b.services.Clock.Now()); err != nil {
			return err
		}
		if key != "" {
			return tx.Idempotency().Complete(ctx, tx.DB(), key, bookingEndpoint, booking.KindInquiry, inq.ID())
		}
		return nil
	})
	if err != nil {
		return nil, markBookingErr(err)
	}

	view, err := b.views.FindInquiryByID(ctx, inq.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	b.logger.Info("inquiry received", "property_id", prop.ID(), "confirmation_code", view.ConfirmationCode)
	return &BookingResult{Kind: booking.KindInquiry, Booking: view}, nil
}

func (b *bookingCommandsImpl) lockCoupon(ctx context.Context, tx shared.Tx, raw string) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(raw)
	if err != nil {
		return nil, coupon.ErrNotFound
	}
	return tx.Coupons().LockByCode(ctx, tx.DB(), code.String())
}

func findCoupon(ctx context.Context, reads shared.CommandReads, raw string) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(raw)
	if err != nil {
		return nil, coupon.ErrNotFound
	}
	return reads.CouponByCode(ctx, code.String())
}

func (b *bookingCommandsImpl) applyCoupon(
	ctx context.Context,
	reads shared.CommandReads,
	c *coupon.Coupon,
	quote pricing.Quote,
	propertyID int64,
	guest booking.Guest,
) (pricing.Quote, error) {
	email := guest.Email().Value()
	guestRedemptions := 0
	if c.LimitsRedemptionsPerGuest() {
		n, err := reads.GuestRedemptions(ctx, c.ID(), email)
		if err != nil {
			return pricing.Quote{}, err
		}
		guestRedemptions = n
	}

	discount, err := c.Validate(b.services.Clock.Now(), coupon.BookingContext{
		Subtotal:   quote.Subtotal,
		Nights:     quote.Nights,
		PropertyID: &propertyID,
		GuestEmail: email,
	}, guestRedemptions)
	if err != nil {
		return pricing.Quote{}, err
	}
	return quote.WithDiscount(c.Code().String(), discount)
}

// claimIdempotencyKey returns the stored result when the request is a replay
// and nil when the caller now owns the key.
func (b *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, key, hash string) (*BookingResult, error) {
	now := b.services.Clock.Now()
	expiresAt := now.Add(b.settings.IdempotencyTTL)

	var inserted bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.Idempotency().TryInsert(ctx, tx.DB(), key, bookingEndpoint, hash, expiresAt)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := b.uow.CommandReads().IdempotencyByKey(ctx, key, bookingEndpoint)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released between our insert attempt and the read
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if existing.IsExpired(now) {
		var claimed bool
		err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			claimed, err = tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, bookingEndpoint, hash, expiresAt, now)
			return err
		})
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != hash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		return b.replay(ctx, existing)
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) replay(ctx context.Context, record *shared.IdempotencyRecord) (*BookingResult, error) {
	if record.ResultKind == nil || record.ResultID == nil {
		return nil, errs.New("completed request missing result")
	}

	kind := booking.Kind(*record.ResultKind)
	var (
		view *queries.BookingView
		err  error
	)
	if kind == booking.KindInquiry {
		view, err = b.views.FindInquiryByID(ctx, *record.ResultID)
	} else {
		view, err = b.views.FindReservationByID(ctx, *record.ResultID)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &BookingResult{Kind: kind, Booking: view, IsReplayed: true}, nil
}

func (b *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key string) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, bookingEndpoint)
	})
	if err != nil {
		b.logger.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

// markBookingErr keeps domain errors as they are and tags everything else as
// a persistence failure.
func markBookingErr(err error) error {
	if _, ok := errs.AsValidation(err); ok {
		return err
	}
	if _, ok := coupon.AsError(err); ok {
		return err
	}
	if errs.Is(err, calendar.ErrDatesUnavailable) {
		return err
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrPropertyNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func requestHash(in BookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

type bookingEvent struct {
	Kind             string    `json:"kind"`
	BookingID        uuid.UUID `json:"bookingId"`
	ConfirmationCode string    `json:"confirmationCode"`
	PropertyID       int64     `json:"propertyId"`
	PropertySlug     string    `json:"propertySlug"`
	CheckIn          *string   `json:"checkIn,omitempty"`
	CheckOut         *string   `json:"checkOut,omitempty"`
	GuestName        string    `json:"guestName"`
	GuestEmail       string    `json:"guestEmail"`
	GuestCount       int       `json:"guestCount"`
	GrandTotal       *int64    `json:"grandTotal,omitempty"`
	Currency         string    `json:"currency,omitempty"`
}

func newBookingEvent(
	kind booking.Kind,
	id uuid.UUID,
	code string,
	prop *property.Property,
	checkIn, checkOut *calendar.Date,
	guest booking.Guest,
	quote *pricing.Quote,
) bookingEvent {
	ev := bookingEvent{
		Kind:             kind.String(),
		BookingID:        id,
		ConfirmationCode: code,
		PropertyID:       prop.ID(),
		PropertySlug:     prop.Slug(),
		GuestName:        guest.Name(),
		GuestEmail:       guest.Email().Value(),
		GuestCount:       guest.Count(),
	}
	if checkIn != nil {
		in := checkIn.String()
		ev.CheckIn = &in
	}
	if checkOut != nil {
		out := checkOut.String()
		ev.CheckOut = &out
	}
	if quote != nil {
		total := quote.GrandTotal
		ev.GrandTotal = &total
		ev.Currency = quote.Currency
	}
	return ev
}
