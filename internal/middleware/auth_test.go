package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadassign/internal/auth"
)

const testAdminID = "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792"

func authorizeFixture(t *testing.T) (echo.MiddlewareFunc, *auth.JwtIssuer) {
	t.Helper()

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate ed25519 key pair")

	method := jwt.GetSigningMethod("EdDSA")
	issuer := auth.NewJwtIssuer("test-issuer", method, 3*time.Minute, private)
	return Authorize(auth.NewJwtValidator(method, public)), issuer
}

func echoAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthorizeValidToken(t *testing.T) {
	mw, issuer := authorizeFixture(t)

	token, err := issuer.Sign(testAdminID, time.Now().UTC())
	require.NoError(t, err)

	c, _ := echoAuthContext(fmt.Sprintf("Bearer %s", token.Signed))

	var adminID string
	next := func(c echo.Context) error {
		adminID, _ = c.Get(AdminIDContextKey).(string)
		return nil
	}

	require.NoError(t, mw(next)(c))
	assert.Equal(t, testAdminID, adminID, "verified admin id must be stored in context")
}

func TestAuthorizeMissingHeader(t *testing.T) {
	mw, _ := authorizeFixture(t)
	c, _ := echoAuthContext("")

	err := mw(func(echo.Context) error { return nil })(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthorizeMalformedHeader(t *testing.T) {
	mw, _ := authorizeFixture(t)
	c, _ := echoAuthContext("Bearer")

	err := mw(func(echo.Context) error { return nil })(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthorizeBadToken(t *testing.T) {
	mw, _ := authorizeFixture(t)
	c, _ := echoAuthContext("Bearer not-a-token")

	err := mw(func(echo.Context) error { return nil })(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
