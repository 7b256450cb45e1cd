//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// LoginUser logs in through the API and returns the access token. The cookie
// and the JSON body must carry the same token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "access token cookie missing")
	require.True(t, accessCookie.HttpOnly, "access token cookie must be HttpOnly")
	require.Equal(t, res.AccessToken, accessCookie.Value)

	return accessCookie.Value
}

// CreateAndLogin seeds an admin with DefaultPassword and logs in as them.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, DefaultPassword)
}
