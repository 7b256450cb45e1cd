//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

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

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "viewer@example.com", string(user.RoleViewer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleAdmin))
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", email: "admin@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "大文字のメールアドレス", email: "Admin@Example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "間違ったパスワード", email: "admin@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "非アクティブユーザー", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "空のメールアドレス", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "空のパスワード", email: "admin@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				reqdto.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Greater(t, res.ExpiresIn, int64(0))
			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM admins WHERE email = 'admin@example.com'").Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_loginが更新されていない")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログイン後にユーザー情報を取得できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "viewer@example.com", authtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "viewer@example.com")
		require.Contains(t, w.Body.String(), string(user.RoleViewer))
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("無効なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("期限切れトークン", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		token := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("無効化されたユーザーのトークン", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)
		dbtest.DeactivateUser(t, s.DB, "admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.NotEqual(t, http.StatusOK, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが削除される", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)

		require.Equal(t, http.StatusNoContent, w.Code)
		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Less(t, cookie.MaxAge, 0)
	})

	s.Run("認証なしでは拒否される", func() {
		for _, ep := range []struct{ method, path string }{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/admin/properties/" + dbtest.InstantPropertySlug + "/blocked-dates"},
		} {
			w := httptest.PerformRequest(s.T(), s.Router, ep.method, ep.path, nil, "")
			require.Equal(s.T(), http.StatusUnauthorized, w.Code, ep.path)
		}
	})
}
