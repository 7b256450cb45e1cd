//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/user"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/tests/common/authtest"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type adminSuite struct {
	e2e.SharedSuite
	today    calendar.Date
	operator string
	viewer   string
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.today = calendar.Today(time.Now(), time.UTC)
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operator = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", string(user.RoleOperator))
	s.viewer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))
}

func adminURL(suffix string) string {
	return "/api/admin/properties/" + dbtest.InstantPropertySlug + suffix
}

func (s *adminSuite) addBlock(start, end calendar.Date, reason string) resdto.BlockedDateResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminURL("/blocked-dates"), reqdto.CreateBlockedDatesRequest{
		Start:  start.String(),
		End:    end.String(),
		Reason: &reason,
	}, s.operator)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	var res resdto.BlockedDateResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return res
}

func (s *adminSuite) TestBlockedDates() {
	s.Run("手動ブロックの追加と一覧と削除", func() {
		t := s.T()
		start := s.today.AddDays(10)
		created := s.addBlock(start, start.AddDays(2), "Owner stay")
		require.Equal(t, calendar.SourceManual, created.Source)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL("/blocked-dates"), nil, s.viewer)
		require.Equal(t, http.StatusOK, w.Code)
		var list []resdto.BlockedDateResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, "Owner stay", *list[0].Reason)

		path := fmt.Sprintf("/api/properties/%s/availability?from=%s&to=%s", dbtest.InstantPropertySlug, start, start.AddDays(5))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "Owner stay")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL("/blocked-dates/"+created.ID.String()), nil, s.operator)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "blocked_intervals"))
	})

	s.Run("閲覧者は追加できない", func() {
		start := s.today.AddDays(10)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminURL("/blocked-dates"), reqdto.CreateBlockedDatesRequest{
			Start: start.String(),
			End:   start.AddDays(2).String(),
		}, s.viewer)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("予約由来のブロックは削除できない", func() {
		t := s.T()
		in, out := s.today.AddDays(20).String(), s.today.AddDays(23).String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqdto.CreateBookingRequest{
			PropertyID: dbtest.InstantPropertyID,
			CheckIn:    &in,
			CheckOut:   &out,
			Guest:      reqdto.GuestRequest{Name: "Hanako Sato", Email: "hanako@example.com", Count: 2},
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL("/blocked-dates"), nil, s.viewer)
		var list []resdto.BlockedDateResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, calendar.SourceReservation, list[0].Source)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL("/blocked-dates/"+list[0].ID.String()), nil, s.operator)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("ブロック中の日程は予約できない", func() {
		t := s.T()
		start := s.today.AddDays(40)
		s.addBlock(start, start.AddDays(1), "Maintenance")

		in, out := start.AddDays(-1).String(), start.AddDays(2).String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqdto.CreateBookingRequest{
			PropertyID: dbtest.InstantPropertyID,
			CheckIn:    &in,
			CheckOut:   &out,
			Guest:      reqdto.GuestRequest{Name: "Hanako Sato", Email: "hanako@example.com", Count: 2},
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *adminSuite) TestCalendarSync() {
	s.Run("外部フィードを取り込み再同期で置き換える", func() {
		t := s.T()
		start := s.today.AddDays(5)
		feed := icsFeed(
			event{uid: "airbnb-1", start: start, end: start.AddDays(3)},
			event{uid: "airbnb-2", start: start.AddDays(10), end: start.AddDays(12)},
		)
		server := nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/calendar")
			_, _ = w.Write([]byte(feed))
		}))
		defer server.Close()
		dbtest.SetCalendarFeed(t, s.DB, dbtest.InstantPropertySlug, server.URL)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL("/calendar/sync"), nil, s.operator)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var res resdto.SyncResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, 2, res.Imported)
		}
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "blocked_intervals"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/properties/"+dbtest.InstantPropertySlug+"/calendar.ics", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
		require.Equal(t, 2, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
	})

	s.Run("取得できないフィードは502", func() {
		t := s.T()
		server := nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		dbtest.SetCalendarFeed(t, s.DB, dbtest.InstantPropertySlug, server.URL)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL("/calendar/sync"), nil, s.operator)
		require.Equal(t, http.StatusBadGateway, w.Code)
	})

	s.Run("フィード未設定は502", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminURL("/calendar/sync"), nil, s.operator)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadGateway, "NO_FEED")
	})
}

type event struct {
	uid        string
	start, end calendar.Date
}

func icsFeed(events ...event) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//feed//EN\r\n")
	for _, e := range events {
		fmt.Fprintf(&b, "BEGIN:VEVENT\r\nUID:%s\r\nDTSTAMP:20250101T000000Z\r\nDTSTART;VALUE=DATE:%s\r\nDTEND;VALUE=DATE:%s\r\nSUMMARY:Reserved\r\nEND:VEVENT\r\n",
			e.uid, compact(e.start), compact(e.end))
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func compact(d calendar.Date) string {
	return strings.ReplaceAll(d.String(), "-", "")
}
