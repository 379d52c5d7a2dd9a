package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedscan/internal/testutil"
)

const testSigningKey = "test-signing-key"

func signTestToken(t *testing.T, key string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "test-client",
		"exp": jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func newAuthGatedServer(t *testing.T, v *TokenVerifier) *httptest.Server {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(v))
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	v := NewTokenVerifier(testSigningKey)
	srv := newAuthGatedServer(t, v)

	token := signTestToken(t, testSigningKey, time.Now().Add(time.Hour))
	resp := testutil.GetWithAuth(t, srv.Client(), srv.URL+"/protected", token)
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	v := NewTokenVerifier(testSigningKey)
	srv := newAuthGatedServer(t, v)

	resp := testutil.Get(t, srv.Client(), srv.URL+"/protected")
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	v := NewTokenVerifier(testSigningKey)
	srv := newAuthGatedServer(t, v)

	token := signTestToken(t, testSigningKey, time.Now().Add(-time.Hour))
	resp := testutil.GetWithAuth(t, srv.Client(), srv.URL+"/protected", token)
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)
}

func TestRequireAuthRejectsBadSignature(t *testing.T) {
	v := NewTokenVerifier(testSigningKey)
	srv := newAuthGatedServer(t, v)

	token := signTestToken(t, "wrong-key", time.Now().Add(time.Hour))
	resp := testutil.GetWithAuth(t, srv.Client(), srv.URL+"/protected", token)
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)
}

func TestRequireAuthPassesThroughWhenDisabled(t *testing.T) {
	v := NewTokenVerifier("")
	srv := newAuthGatedServer(t, v)

	resp := testutil.Get(t, srv.Client(), srv.URL+"/protected")
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestPostJSONWithAuthReachesProtectedHandler(t *testing.T) {
	v := NewTokenVerifier(testSigningKey)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(v))
		r.Post("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token := signTestToken(t, testSigningKey, time.Now().Add(time.Hour))
	resp := testutil.PostJSONWithAuth(t, srv.Client(), srv.URL+"/protected", map[string]string{"ping": "pong"}, token)
	testutil.AssertStatus(t, resp, http.StatusAccepted)
}

func TestVerifyDisabledReturnsEmptySubject(t *testing.T) {
	v := NewTokenVerifier("")
	sub, err := v.Verify("")
	require.NoError(t, err)
	assert.Empty(t, sub)
}
