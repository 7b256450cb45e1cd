//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func services() *booking.Services {
	return booking.NewServices(clock.NewMockClock(createdAt), booking.RandomCodes{})
}

func guest(t *testing.T) booking.Guest {
	t.Helper()
	g, err := booking.NewGuest("Aiko Tanaka", "aiko@example.com", nil, 2)
	require.NoError(t, err)
	return g
}

func TestNewInquiry(t *testing.T) {
	checkIn := calendar.MustParseDate("2025-08-01")
	checkOut := calendar.MustParseDate("2025-08-04")

	t.Run("両日付があれば滞在と見積もりを持つ", func(t *testing.T) {
		stay, err := calendar.NewDateRange(checkIn, checkOut)
		require.NoError(t, err)
		quote := pricing.NewQuote(pricing.Breakdown{Nights: stay.Nights(), Total: 835, Currency: "USD"})

		inq, err := booking.NewInquiry(services(), 1, &checkIn, &checkOut, guest(t), nil, &quote)

		require.NoError(t, err)
		require.NotNil(t, inq.Stay())
		assert.Equal(t, 3, inq.Stay().Nights())
		assert.Equal(t, int64(835), inq.Quote().GrandTotal)
		assert.True(t, strings.HasPrefix(inq.ConfirmationCode(), "INQ-"))
		assert.Equal(t, createdAt, inq.CreatedAt())
	})

	t.Run("チェックインだけでも保持される", func(t *testing.T) {
		inq, err := booking.NewInquiry(services(), 1, &checkIn, nil, guest(t), ptr.To("Flexible on checkout"), nil)

		require.NoError(t, err)
		require.NotNil(t, inq.CheckIn())
		assert.Equal(t, checkIn, *inq.CheckIn())
		assert.Nil(t, inq.CheckOut())
		assert.Nil(t, inq.Stay())
		assert.Nil(t, inq.Quote())
	})

	t.Run("チェックアウトだけならメッセージなしでも受け付ける", func(t *testing.T) {
		inq, err := booking.NewInquiry(services(), 1, nil, &checkOut, guest(t), nil, nil)

		require.NoError(t, err)
		assert.Nil(t, inq.CheckIn())
		assert.Equal(t, checkOut, *inq.CheckOut())
		assert.Empty(t, inq.Message())
	})

	t.Run("日付もメッセージもなければ拒否", func(t *testing.T) {
		_, err := booking.NewInquiry(services(), 1, nil, nil, guest(t), nil, nil)

		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "message", ve.Field)
		assert.ErrorIs(t, err, booking.ErrMessageRequired)
	})

	t.Run("片方の日付だけでは見積もりを付けられない", func(t *testing.T) {
		quote := pricing.NewQuote(pricing.Breakdown{Nights: 3})

		_, err := booking.NewInquiry(services(), 1, &checkIn, nil, guest(t), ptr.To("hi"), &quote)

		assert.ErrorIs(t, err, booking.ErrQuoteNightsDiff)
	})

	t.Run("逆順の日付は検証エラー", func(t *testing.T) {
		_, err := booking.NewInquiry(services(), 1, &checkOut, &checkIn, guest(t), nil, nil)

		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "checkOut", ve.Field)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})
}
