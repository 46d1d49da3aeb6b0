package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("session-test", false)
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, sessionID, err := m.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sessionID)

	verified, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, verified)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, _, err := m.Issue()
	require.NoError(t, err)

	_, err = m.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).Issue()
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, _, err := m.Issue()
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewareIssuesCookieForNewVisitor(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	var seenSessionID string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/cart", nil))

	require.NotEmpty(t, seenSessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// The issued cookie verifies back to the same session id
	verified, err := m.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, seenSessionID, verified)
}

func TestMiddlewareKeepsExistingSession(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, sessionID, err := m.Issue()
	require.NoError(t, err)

	var seenSessionID string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, sessionID, seenSessionID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestMiddlewareReplacesTamperedCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	var seenSessionID string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, seenSessionID)
	require.Len(t, rec.Result().Cookies(), 1)
}
