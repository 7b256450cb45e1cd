//go:build e2e

package booking_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/calendar"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/ptr"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	checkIn  calendar.Date
	checkOut calendar.Date
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.checkIn = calendar.Today(time.Now(), time.UTC).AddDays(30)
	s.checkOut = s.checkIn.AddDays(3)
}

func (s *bookingSuite) request(propertyID int64, checkIn, checkOut calendar.Date, email string) reqdto.CreateBookingRequest {
	in, out := checkIn.String(), checkOut.String()
	return reqdto.CreateBookingRequest{
		PropertyID: propertyID,
		CheckIn:    &in,
		CheckOut:   &out,
		Guest: reqdto.GuestRequest{
			Name:  "Hanako Sato",
			Email: email,
			Count: 2,
		},
	}
}

func (s *bookingSuite) post(body any, key string) (int, resdto.BookingResponse, http.Header) {
	s.T().Helper()
	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, body, headers)
	var res resdto.BookingResponse
	if w.Code < 300 {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res, w.Header()
}

func (s *bookingSuite) redemptions(code string) int {
	s.T().Helper()
	var n int
	err := s.DB.QueryRow(context.Background(), "SELECT current_redemptions FROM coupons WHERE code = $1", code).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var res struct {
		Detail struct {
			Code string `json:"code"`
		} `json:"detail"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, body, &res))
	return res.Detail.Code
}

func (s *bookingSuite) TestReservation() {
	s.Run("即時予約は料金を確定して予約済みになる", func() {
		t := s.T()

		code, res, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com"), "")

		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "reservation", res.Kind)
		require.NotNil(t, res.Reservation)
		require.Regexp(t, `^RSV-[A-Z0-9]{8}$`, res.Reservation.ConfirmationCode)
		require.Equal(t, "confirmed", res.Reservation.Status)
		require.Equal(t, int64(1064), res.Reservation.Pricing.GrandTotal)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "blocked_intervals"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+res.Reservation.ConfirmationCode, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("クーポン適用で割引が反映され再利用は拒否される", func() {
		t := s.T()
		body := s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com")
		coupon := dbtest.SeededCouponCode
		body.AppliedCoupon = &coupon

		code, res, _ := s.post(body, "")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, int64(75), res.Reservation.Pricing.Discount)
		require.Equal(t, int64(989), res.Reservation.Pricing.GrandTotal)

		email := "HANAKO@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons/validate", reqdto.ValidateCouponRequest{
			Code:       "summer10",
			Subtotal:   750,
			Nights:     3,
			GuestEmail: &email,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var validation resdto.CouponValidationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &validation))
		require.False(t, validation.Valid)
		require.Equal(t, "GUEST_LIMIT_REACHED", validation.Error.Code)
	})

	s.Run("利用上限1回のクーポンは二件目でLIMIT_REACHEDになり予約も残らない", func() {
		t := s.T()
		first := s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "first@example.com")
		first.AppliedCoupon = ptr.To(dbtest.LimitedCouponCode)
		code, res, _ := s.post(first, "")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, int64(50), res.Reservation.Pricing.Discount)

		second := s.request(dbtest.InstantPropertyID, s.checkOut.AddDays(5), s.checkOut.AddDays(8), "second@example.com")
		second.AppliedCoupon = ptr.To(dbtest.LimitedCouponCode)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, "")

		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Equal(t, "LIMIT_REACHED", errorCode(t, w.Body))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupon_redemptions"))
		require.Equal(t, 1, s.redemptions(dbtest.LimitedCouponCode))
	})

	s.Run("利用上限1回のクーポンを別日程で同時に使っても一件だけ成功する", func() {
		t := s.T()
		const n = 5
		var wg sync.WaitGroup
		codes := make([]int, n)
		bodies := make([]string, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				checkIn := s.checkIn.AddDays(i * 4)
				body := s.request(dbtest.InstantPropertyID, checkIn, checkIn.AddDays(3), fmt.Sprintf("guest%d@example.com", i))
				body.AppliedCoupon = ptr.To(dbtest.LimitedCouponCode)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, "")
				codes[i], bodies[i] = w.Code, w.Body.String()
			}()
		}
		wg.Wait()

		created := 0
		for i, c := range codes {
			if c == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusUnprocessableEntity, c, bodies[i])
			require.Contains(t, bodies[i], `"LIMIT_REACHED"`)
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, s.redemptions(dbtest.LimitedCouponCode))
	})

	s.Run("重なる日程は409になりチェックアウト日からは予約できる", func() {
		t := s.T()
		code, _, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "a@example.com"), "")
		require.Equal(t, http.StatusCreated, code)

		code, _, _ = s.post(s.request(dbtest.InstantPropertyID, s.checkIn.AddDays(1), s.checkOut.AddDays(1), "b@example.com"), "")
		require.Equal(t, http.StatusConflict, code)

		code, _, _ = s.post(s.request(dbtest.InstantPropertyID, s.checkOut, s.checkOut.AddDays(2), "c@example.com"), "")
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("同時予約は一件だけ成功する", func() {
		t := s.T()
		const n = 5
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, fmt.Sprintf("guest%d@example.com", i)), "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, c)
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("最低泊数未満は400", func() {
		code, _, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkIn.AddDays(1), "a@example.com"), "")
		require.Equal(s.T(), http.StatusBadRequest, code)
	})

	s.Run("存在しない予約番号は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/RSV-ZZZZ9999", nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestCouponStorage() {
	s.Run("固定額クーポンは端数付きの値を保存できない", func() {
		t := s.T()
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO coupons (code, discount_type, discount_value) VALUES ('HALFCENT', 'fixed', 49.99)")

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23514", pgErr.Code)
		require.Equal(t, "coupons_fixed_whole_units", pgErr.ConstraintName)
	})

	s.Run("割合クーポンは小数の値を保存できる", func() {
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO coupons (code, discount_type, discount_value) VALUES ('QUARTER', 'percentage', 12.50)")
		require.NoError(s.T(), err)
	})
}

func (s *bookingSuite) TestIdempotency() {
	s.Run("同じキーの再送は同じ予約を返す", func() {
		t := s.T()
		key := uuid.NewString()
		body := s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com")

		code, first, _ := s.post(body, key)
		require.Equal(t, http.StatusCreated, code)

		code, replay, header := s.post(body, key)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "true", header.Get("Idempotent-Replayed"))
		require.Equal(t, first.Reservation.ConfirmationCode, replay.Reservation.ConfirmationCode)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("同じキーで内容が違えば422", func() {
		t := s.T()
		key := uuid.NewString()

		code, _, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com"), key)
		require.Equal(t, http.StatusCreated, code)

		code, _, _ = s.post(s.request(dbtest.InstantPropertyID, s.checkIn.AddDays(7), s.checkOut.AddDays(7), "hanako@example.com"), key)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("失敗したリクエストのキーは再利用できる", func() {
		t := s.T()
		key := uuid.NewString()

		code, _, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkIn.AddDays(1), "hanako@example.com"), key)
		require.Equal(t, http.StatusBadRequest, code)

		code, _, _ = s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com"), key)
		require.Equal(t, http.StatusCreated, code)
	})
}

func (s *bookingSuite) TestInquiry() {
	s.Run("問い合わせ専用物件は問い合わせになる", func() {
		t := s.T()
		body := s.request(dbtest.InquiryPropertyID, s.checkIn, s.checkOut, "hanako@example.com")

		code, res, _ := s.post(body, "")

		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "inquiry", res.Kind)
		require.NotNil(t, res.Inquiry)
		require.Regexp(t, `^INQ-[A-Z0-9]{8}$`, res.Inquiry.ConfirmationCode)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "blocked_intervals"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs"))
	})

	s.Run("日程なしでもメッセージがあれば受け付ける", func() {
		t := s.T()
		msg := "Is the cabin pet friendly?"
		body := reqdto.CreateBookingRequest{
			PropertyID: dbtest.InquiryPropertyID,
			Guest:      reqdto.GuestRequest{Name: "Taro", Email: "taro@example.com", Count: 1},
			Message:    &msg,
		}

		code, res, _ := s.post(body, "")

		require.Equal(t, http.StatusCreated, code)
		require.Nil(t, res.Inquiry.CheckIn)
		require.Nil(t, res.Inquiry.Pricing)
	})

	s.Run("チェックインだけの問い合わせは日付を保存し見積もらない", func() {
		t := s.T()
		in, msg := s.checkIn.String(), "Not sure when we leave yet"
		body := reqdto.CreateBookingRequest{
			PropertyID: dbtest.InstantPropertyID,
			CheckIn:    &in,
			Guest:      reqdto.GuestRequest{Name: "Taro", Email: "taro@example.com", Count: 1},
			Message:    &msg,
		}

		code, res, _ := s.post(body, "")

		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "inquiry", res.Kind)
		require.NotNil(t, res.Inquiry.CheckIn)
		require.Equal(t, s.checkIn, *res.Inquiry.CheckIn)
		require.Nil(t, res.Inquiry.CheckOut)
		require.Nil(t, res.Inquiry.Pricing)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

func (s *bookingSuite) TestAvailabilityAndPricing() {
	base := "/api/properties/" + dbtest.InstantPropertySlug

	s.Run("予約した夜は無効日として返る", func() {
		t := s.T()
		code, _, _ := s.post(s.request(dbtest.InstantPropertyID, s.checkIn, s.checkOut, "hanako@example.com"), "")
		require.Equal(t, http.StatusCreated, code)

		path := fmt.Sprintf("%s/availability?from=%s&to=%s", base, s.checkIn.AddDays(-1), s.checkOut.AddDays(1))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.BlockedDates, 1)
		require.Equal(t, calendar.SourceReservation, res.BlockedDates[0].Source)
		require.Nil(t, res.BlockedDates[0].Reason)
		require.Equal(t, []calendar.Date{s.checkIn, s.checkIn.AddDays(1), s.checkIn.AddDays(2)}, res.DisabledDates)
	})

	s.Run("料金見積もり", func() {
		t := s.T()
		path := fmt.Sprintf("%s/pricing?checkIn=%s&checkOut=%s&guests=2", base, s.checkIn, s.checkOut)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.PricingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, resdto.PricingResponse{
			PricePerNight: 250,
			Nights:        3,
			Subtotal:      750,
			CleaningFee:   85,
			ServiceFee:    90,
			Taxes:         139,
			Total:         1064,
			Currency:      "USD",
		}, res)
	})

	s.Run("存在しない物件は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/properties/nowhere/availability", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "PROPERTY_NOT_FOUND")
	})
}
