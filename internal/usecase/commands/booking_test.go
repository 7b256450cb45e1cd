//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/coupon"
	"staybook/internal/domain/pricing"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"
	"staybook/tests/common/builder"
	commandsmock "staybook/tests/mock/commands"
	sharedmock "staybook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// txMocks wires a MockTx whose repositories are individual mocks. Within runs
// the callback synchronously against it.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	properties    *sharedmock.MockPropertyRepository
	intervals     *sharedmock.MockBlockedIntervalRepository
	coupons       *sharedmock.MockCouponRepository
	reservations  *sharedmock.MockReservationRepository
	inquiries     *sharedmock.MockInquiryRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		properties:    sharedmock.NewMockPropertyRepository(ctrl),
		intervals:     sharedmock.NewMockBlockedIntervalRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		inquiries:     sharedmock.NewMockInquiryRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	m.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Properties().Return(m.properties).AnyTimes()
	m.tx.EXPECT().BlockedIntervals().Return(m.intervals).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Inquiries().Return(m.inquiries).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *txMocks
	views    *commandsmock.MockBookingViews
	commands commands.BookingCommands
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// SetupSubTest gives every s.Run case fresh mocks.
func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.views = commandsmock.NewMockBookingViews(s.ctrl)

	schedule, err := pricing.NewSchedule("0.12", "0.15", "USD")
	s.Require().NoError(err)
	settings := shared.BookingSettings{Location: time.UTC, IdempotencyTTL: 24 * time.Hour}
	services := booking.NewServices(clock.NewMockClock(bookingNow), booking.RandomCodes{})

	s.commands = commands.NewBookingCommands(s.m.uow, s.views, services, schedule, settings, discardLogger())
}

// expectReservation records the happy path writes and returns pointers that
// are filled once the mocks run.
func (s *BookingCommandsTestSuite) expectReservation(prop *builder.PropertyBuilder) (**booking.Reservation, *[]byte) {
	p := prop.MustBuildDomain()
	var created *booking.Reservation
	var payload []byte

	s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
	s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
	s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), calendar.MustParseDate("2025-06-01")).Return(nil, nil)
	s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, r *booking.Reservation) error {
			created = r
			return nil
		})
	s.m.intervals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, iv *calendar.BlockedInterval) error {
			s.Equal(calendar.SourceReservation, iv.Source())
			s.Equal(created.Stay(), iv.Span())
			s.Equal(created.ID(), *iv.ReservationID())
			return nil
		})
	s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "reservation_confirmed", booking.EventReservationConfirmed, gomock.Any(), bookingNow).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, body []byte, _ time.Time) error {
			payload = body
			return nil
		})
	return &created, &payload
}

func (s *BookingCommandsTestSuite) expectReservationView(created **booking.Reservation) *queries.BookingView {
	view := builder.NewBookingBuilder().BuildView(booking.KindReservation)
	s.views.EXPECT().FindReservationByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			s.Equal((*created).ID(), id)
			return view, nil
		})
	return view
}

func (s *BookingCommandsTestSuite) TestSubmit_Reservation() {
	ctx := context.Background()

	s.Run("instant-book property with both dates creates a reservation", func() {
		created, payload := s.expectReservation(builder.NewPropertyBuilder())
		view := s.expectReservationView(created)

		result, err := s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)

		s.Require().NoError(err)
		s.Equal(booking.KindReservation, result.Kind)
		s.Same(view, result.Booking)
		s.False(result.IsReplayed)

		res := *created
		s.True(strings.HasPrefix(res.ConfirmationCode(), "RSV-"))
		s.Len(res.ConfirmationCode(), 12)
		s.Equal(3, res.Quote().Nights)
		s.Equal(int64(750), res.Quote().Subtotal)
		s.Equal(int64(1064), res.Quote().GrandTotal)
		s.Equal("hanako@example.com", res.Guest().Email().Value())

		var event map[string]any
		s.Require().NoError(json.Unmarshal(*payload, &event))
		s.Equal("reservation", event["kind"])
		s.Equal(res.ConfirmationCode(), event["confirmationCode"])
		s.Equal("2025-07-10", event["checkIn"])
		s.Equal("seaside-cottage", event["propertySlug"])
		s.InDelta(1064, event["grandTotal"], 0)
	})

	s.Run("coupon is locked, validated and redeemed in the same transaction", func() {
		created, _ := s.expectReservation(builder.NewPropertyBuilder())
		s.expectReservationView(created)
		c := builder.NewCouponBuilder().MustBuildDomain()

		s.m.coupons.EXPECT().LockByCode(gomock.Any(), gomock.Any(), "SUMMER10").Return(c, nil)
		s.m.coupons.EXPECT().Redeem(gomock.Any(), gomock.Any(), c, gomock.Any(), "hanako@example.com", int64(75)).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ *coupon.Coupon, resID uuid.UUID, _ string, _ int64) error {
				s.Equal((*created).ID(), resID)
				return nil
			})

		in := builder.NewBookingBuilder().WithCoupon("summer10").BuildInput()
		_, err := s.commands.Submit(ctx, in, nil)

		s.Require().NoError(err)
		q := (*created).Quote()
		s.Equal(int64(75), q.Discount)
		s.Equal(int64(989), q.GrandTotal)
		s.Require().NotNil(q.CouponCode)
		s.Equal("SUMMER10", *q.CouponCode)
	})

	s.Run("per-guest limit counts the guest's earlier redemptions", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		one := 1
		c := builder.NewCouponBuilder().WithConstraints(func(k *coupon.Constraints) { k.MaxPerGuest = &one }).MustBuildDomain()

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).Return(nil, nil)
		s.m.coupons.EXPECT().LockByCode(gomock.Any(), gomock.Any(), "SUMMER10").Return(c, nil)
		s.m.reads.EXPECT().GuestRedemptions(gomock.Any(), c.ID(), "hanako@example.com").Return(1, nil)

		_, err := s.commands.Submit(ctx, builder.NewBookingBuilder().WithCoupon("SUMMER10").BuildInput(), nil)

		s.ErrorIs(err, coupon.ErrGuestLimitReached)
	})

	s.Run("overlapping blocked interval rejects the stay", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		reason := "Owner stay"
		blocked, err := calendar.NewManualInterval(p.ID(),
			calendar.MustParseDate("2025-07-12"), calendar.MustParseDate("2025-07-15"), &reason, bookingNow)
		s.Require().NoError(err)

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).
			Return([]*calendar.BlockedInterval{blocked}, nil)

		_, err = s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)

		s.ErrorIs(err, calendar.ErrDatesUnavailable)
	})

	s.Run("checkout on the first blocked night is allowed", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		blocked, err := calendar.NewManualInterval(p.ID(),
			calendar.MustParseDate("2025-07-13"), calendar.MustParseDate("2025-07-15"), nil, bookingNow)
		s.Require().NoError(err)

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).
			Return([]*calendar.BlockedInterval{blocked}, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.intervals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().FindReservationByID(gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildView(booking.KindReservation), nil)

		_, err = s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)
		s.NoError(err)
	})

	s.Run("exclusion constraint conflict surfaces as dates unavailable", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).Return(nil, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("overlapping reservation", errors.New("exclusion violation"), infra.KindConflict))

		_, err := s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)

		s.True(errs.Is(err, calendar.ErrDatesUnavailable))
	})

	s.Run("stay shorter than the minimum is a validation error", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		s.m.intervals.EXPECT().ListEndingAfter(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).Return(nil, nil)

		in := builder.NewBookingBuilder().WithDates("2025-07-10", "2025-07-11").BuildInput()
		_, err := s.commands.Submit(ctx, in, nil)

		ve, ok := errs.AsValidation(err)
		s.Require().True(ok, "expected validation error, got %v", err)
		s.Equal("checkOut", ve.Field)
		s.ErrorIs(err, calendar.ErrStayTooShort)
	})

	s.Run("storage failure is tagged as a database error", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.properties.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), p.ID()).
			Return(nil, infra.WrapRepoErr("failed to lock property", errors.New("connection reset")))

		_, err := s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)

		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *BookingCommandsTestSuite) TestSubmit_Inquiry() {
	ctx := context.Background()

	s.Run("inquiry-only property with dates stores a quoted inquiry", func() {
		p := builder.NewPropertyBuilder().AsInquiryOnly().MustBuildDomain()
		var created *booking.Inquiry

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, inq *booking.Inquiry) error {
				created = inq
				return nil
			})
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "inquiry_received", booking.EventInquiryReceived, gomock.Any(), bookingNow).Return(nil)
		view := builder.NewBookingBuilder().BuildView(booking.KindInquiry)
		s.views.EXPECT().FindInquiryByID(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := s.commands.Submit(ctx, builder.NewBookingBuilder().BuildInput(), nil)

		s.Require().NoError(err)
		s.Equal(booking.KindInquiry, result.Kind)
		s.Require().NotNil(created)
		s.True(strings.HasPrefix(created.ConfirmationCode(), "INQ-"))
		s.Require().NotNil(created.Quote())
		s.Equal(int64(1064), created.Quote().GrandTotal)
		s.Equal(booking.InquiryNew, created.Status())
	})

	s.Run("coupon on an inquiry is priced but not redeemed", func() {
		p := builder.NewPropertyBuilder().AsInquiryOnly().MustBuildDomain()
		c := builder.NewCouponBuilder().MustBuildDomain()
		var created *booking.Inquiry

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.reads.EXPECT().CouponByCode(gomock.Any(), "SUMMER10").Return(c, nil)
		s.m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, inq *booking.Inquiry) error {
				created = inq
				return nil
			})
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().FindInquiryByID(gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildView(booking.KindInquiry), nil)

		_, err := s.commands.Submit(ctx, builder.NewBookingBuilder().WithCoupon("SUMMER10").BuildInput(), nil)

		s.Require().NoError(err)
		s.Equal(int64(75), created.Quote().Discount)
		s.Equal("SUMMER10", *created.CouponCode())
	})

	s.Run("dateless request with a message becomes an inquiry", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		var created *booking.Inquiry

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, inq *booking.Inquiry) error {
				created = inq
				return nil
			})
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "inquiry_received", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().FindInquiryByID(gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildView(booking.KindInquiry), nil)

		in := builder.NewBookingBuilder().WithoutDates().WithMessage("Do you allow dogs?").BuildInput()
		_, err := s.commands.Submit(ctx, in, nil)

		s.Require().NoError(err)
		s.Nil(created.Stay())
		s.Nil(created.Quote())
		s.Equal("Do you allow dogs?", created.Message())
	})

	s.Run("a lone check-in date is kept on an unquoted inquiry", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		var created *booking.Inquiry

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, inq *booking.Inquiry) error {
				created = inq
				return nil
			})
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().FindInquiryByID(gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildView(booking.KindInquiry), nil)

		in := builder.NewBookingBuilder().WithMessage("Flexible on checkout").With(func(b *builder.BookingBuilder) { b.CheckOut = nil }).BuildInput()
		_, err := s.commands.Submit(ctx, in, nil)

		s.Require().NoError(err)
		s.Require().NotNil(created.CheckIn())
		s.Equal(*in.CheckIn, *created.CheckIn())
		s.Nil(created.CheckOut())
		s.Nil(created.Stay())
		s.Nil(created.Quote())
	})

	s.Run("a lone check-out date without a message still becomes an inquiry", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		var created *booking.Inquiry

		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)
		s.m.inquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, inq *booking.Inquiry) error {
				created = inq
				return nil
			})
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().FindInquiryByID(gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildView(booking.KindInquiry), nil)

		in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CheckIn = nil }).BuildInput()
		_, err := s.commands.Submit(ctx, in, nil)

		s.Require().NoError(err)
		s.Nil(created.CheckIn())
		s.Require().NotNil(created.CheckOut())
		s.Equal(*in.CheckOut, *created.CheckOut())
	})

	s.Run("dateless request without a message is rejected", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := s.commands.Submit(ctx, builder.NewBookingBuilder().WithoutDates().BuildInput(), nil)

		ve, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Equal("message", ve.Field)
		s.ErrorIs(err, booking.ErrMessageRequired)
	})
}

func (s *BookingCommandsTestSuite) TestSubmit_Guards() {
	ctx := context.Background()
	in := builder.NewBookingBuilder().BuildInput()

	s.Run("unknown property", func() {
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), in.PropertyID).
			Return(nil, infra.WrapRepoErr("property not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Submit(ctx, in, nil)
		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})

	s.Run("inactive property is hidden", func() {
		p := builder.NewPropertyBuilder().AsInactive().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), in.PropertyID).Return(p, nil)

		_, err := s.commands.Submit(ctx, in, nil)
		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})

	s.Run("guest count above the property maximum", func() {
		p := builder.NewPropertyBuilder().WithMaxGuests(1).MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), in.PropertyID).Return(p, nil)

		_, err := s.commands.Submit(ctx, in, nil)

		ve, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Equal("guest.count", ve.Field)
	})

	s.Run("check-out before check-in", func() {
		p := builder.NewPropertyBuilder().MustBuildDomain()
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), in.PropertyID).Return(p, nil)

		bad := builder.NewBookingBuilder().WithDates("2025-07-13", "2025-07-10").BuildInput()
		_, err := s.commands.Submit(ctx, bad, nil)

		s.ErrorIs(err, calendar.ErrInvalidRange)
	})
}

func (s *BookingCommandsTestSuite) TestSubmit_Idempotency() {
	ctx := context.Background()
	key := "key-123"
	in := builder.NewBookingBuilder().BuildInput()
	resultID := uuid.MustParse("9e4b2c7a-6d1f-4a3e-8b5c-0f2d4e6a8c1b")
	completed := booking.KindReservation.String()

	s.Run("first use claims the key and completes it with the booking", func() {
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, "POST /api/bookings", gomock.Any(), bookingNow.Add(24*time.Hour)).Return(true, nil)
		created, _ := s.expectReservation(builder.NewPropertyBuilder())
		s.m.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, "POST /api/bookings", booking.KindReservation, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, _ booking.Kind, id uuid.UUID) error {
				s.Equal((*created).ID(), id)
				return nil
			})
		s.expectReservationView(created)

		result, err := s.commands.Submit(ctx, in, &key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("failure releases the key", func() {
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.reads.EXPECT().PropertyByID(gomock.Any(), in.PropertyID).
			Return(nil, infra.WrapRepoErr("property not found", errors.New("no rows"), infra.KindNotFound))
		s.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, "POST /api/bookings").Return(nil)

		_, err := s.commands.Submit(ctx, in, &key)
		s.ErrorIs(err, commands.ErrPropertyNotFound)
	})

	// existing sets up a lost insert race followed by a read of the stored
	// record; the record carries the hash the command computed unless
	// overridden.
	existing := func(mutate func(r *shared.IdempotencyRecord)) {
		var hash string
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _, h string, _ time.Time) (bool, error) {
				hash = h
				return false, nil
			})
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, "POST /api/bookings").
			DoAndReturn(func(context.Context, string, string) (*shared.IdempotencyRecord, error) {
				r := &shared.IdempotencyRecord{
					Key:         key,
					Endpoint:    "POST /api/bookings",
					Status:      shared.IdempotencyCompleted,
					RequestHash: hash,
					ResultKind:  &completed,
					ResultID:    &resultID,
					ExpiresAt:   bookingNow.Add(time.Hour),
				}
				mutate(r)
				return r, nil
			})
	}

	s.Run("completed key replays the stored booking", func() {
		existing(func(*shared.IdempotencyRecord) {})
		view := builder.NewBookingBuilder().BuildView(booking.KindReservation)
		s.views.EXPECT().FindReservationByID(gomock.Any(), resultID).Return(view, nil)

		result, err := s.commands.Submit(ctx, in, &key)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(booking.KindReservation, result.Kind)
		s.Same(view, result.Booking)
	})

	s.Run("completed inquiry key replays the inquiry", func() {
		inquiry := booking.KindInquiry.String()
		existing(func(r *shared.IdempotencyRecord) { r.ResultKind = &inquiry })
		s.views.EXPECT().FindInquiryByID(gomock.Any(), resultID).Return(builder.NewBookingBuilder().BuildView(booking.KindInquiry), nil)

		result, err := s.commands.Submit(ctx, in, &key)

		s.Require().NoError(err)
		s.Equal(booking.KindInquiry, result.Kind)
		s.True(result.IsReplayed)
	})

	s.Run("same key with a different body is rejected", func() {
		existing(func(r *shared.IdempotencyRecord) { r.RequestHash = "another-request" })

		_, err := s.commands.Submit(ctx, in, &key)
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
	})

	s.Run("key still processing", func() {
		existing(func(r *shared.IdempotencyRecord) {
			r.Status = shared.IdempotencyProcessing
			r.ResultKind, r.ResultID = nil, nil
		})

		_, err := s.commands.Submit(ctx, in, &key)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("key released between insert and read", func() {
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, gomock.Any()).
			Return(nil, infra.WrapRepoErr("idempotency key not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Submit(ctx, in, &key)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("expired key is reclaimed and the request runs again", func() {
		existing(func(r *shared.IdempotencyRecord) {
			r.ExpiresAt = bookingNow.Add(-time.Minute)
			r.RequestHash = "older-request"
		})
		s.m.idempotency.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), bookingNow.Add(24*time.Hour), bookingNow).Return(true, nil)
		created, _ := s.expectReservation(builder.NewPropertyBuilder())
		s.m.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any(), booking.KindReservation, gomock.Any()).Return(nil)
		s.expectReservationView(created)

		result, err := s.commands.Submit(ctx, in, &key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("expired key claimed by another request", func() {
		existing(func(r *shared.IdempotencyRecord) { r.ExpiresAt = bookingNow.Add(-time.Minute) })
		s.m.idempotency.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.commands.Submit(ctx, in, &key)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})
}
