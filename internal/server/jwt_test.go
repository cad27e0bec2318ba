package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/study-search/internal/config"
	"github.com/jonathan/study-search/internal/logging"
	"github.com/jonathan/study-search/internal/types"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	clientID := uuid.New()

	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.GetClientID())
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-one", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-two", ExpirationHours: 1})

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestServer_AuthRequiredWhenSecretSet(t *testing.T) {
	t.Setenv("JWT_SECRET", "server-test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	srv, err := New(Config{Port: 0, Logger: logging.New("error")})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })
	require.NotNil(t, srv.jwtService)

	payload := `{"question": "Which? A) x B) y", "document": "The letter x is here."}`

	// No token.
	rec := doRequest(srv, http.MethodPost, "/search", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req := newJSONRequest(http.MethodPost, "/search", payload)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = record(srv, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	token, err := srv.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)
	req = newJSONRequest(http.MethodPost, "/search", payload)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = record(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, types.MethodQuiz, result.Method)
}

func TestServer_HealthOpenWithAuthEnabled(t *testing.T) {
	t.Setenv("JWT_SECRET", "server-test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	srv, err := New(Config{Port: 0, Logger: logging.New("error")})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })

	rec := doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
