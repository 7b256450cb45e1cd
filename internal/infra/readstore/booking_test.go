//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra"
	"staybook/internal/infra/readstore"
	sqlc "staybook/internal/infra/sqlc/generated"
	readstoremock "staybook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingCreatedAt = pgtype.Timestamptz{Time: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC), Valid: true}

const pricingJSON = `{"pricePerNight":250,"nights":3,"subtotal":750,"cleaningFee":85,"serviceFee":90,` +
	`"taxes":139,"total":1064,"currency":"USD","couponCode":"SUMMER10","discount":75,"grandTotal":989}`

func TestBookingReadStore_FindByConfirmationCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reservation code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().GetReservationByConfirmationCode(ctx, gomock.Any(), "RSV-ABCD2345").
			Return(sqlc.GetReservationByConfirmationCodeRow{
				ID:               id,
				PropertyID:       1,
				PropertySlug:     "seaside-cottage",
				CheckIn:          pgtype.Date{Time: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Valid: true},
				CheckOut:         pgtype.Date{Time: time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), Valid: true},
				GuestName:        "Hana Sato",
				GuestEmail:       "hana@example.com",
				GuestCount:       2,
				Pricing:          []byte(pricingJSON),
				CouponCode:       pgtype.Text{String: "SUMMER10", Valid: true},
				ConfirmationCode: "RSV-ABCD2345",
				Status:           "confirmed",
				CreatedAt:        bookingCreatedAt,
			}, nil)

		view, err := store.FindByConfirmationCode(ctx, " rsv-abcd2345 ")
		require.NoError(t, err)
		assert.Equal(t, "reservation", view.Kind)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, calendar.MustParseDate("2025-08-01"), *view.CheckIn)
		assert.Equal(t, calendar.MustParseDate("2025-08-04"), *view.CheckOut)
		require.NotNil(t, view.Pricing)
		assert.Equal(t, int64(989), view.Pricing.GrandTotal)
		assert.Equal(t, 2, view.Guest.Count)
		assert.Nil(t, view.Message)
	})

	t.Run("success: inquiry code without dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetInquiryByConfirmationCode(ctx, gomock.Any(), "INQ-ZZZZ9999").
			Return(sqlc.GetInquiryByConfirmationCodeRow{
				ID:               uuid.New(),
				PropertyID:       1,
				PropertySlug:     "seaside-cottage",
				GuestName:        "Hana Sato",
				GuestEmail:       "hana@example.com",
				GuestCount:       1,
				Message:          "Is the cottage free in winter?",
				ConfirmationCode: "INQ-ZZZZ9999",
				Status:           "new",
				CreatedAt:        bookingCreatedAt,
			}, nil)

		view, err := store.FindByConfirmationCode(ctx, "INQ-ZZZZ9999")
		require.NoError(t, err)
		assert.Equal(t, "inquiry", view.Kind)
		assert.Nil(t, view.CheckIn)
		assert.Nil(t, view.Pricing)
		require.NotNil(t, view.Message)
		assert.Equal(t, "Is the cottage free in winter?", *view.Message)
	})

	t.Run("error: unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetReservationByConfirmationCode(ctx, gomock.Any(), "RSV-NOPE0000").
			Return(sqlc.GetReservationByConfirmationCodeRow{}, pgx.ErrNoRows)

		_, err := store.FindByConfirmationCode(ctx, "RSV-NOPE0000")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt pricing snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), id).
			Return(sqlc.GetReservationByIDRow{ID: id, Pricing: []byte("[")}, nil)

		_, err := store.FindReservationByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
