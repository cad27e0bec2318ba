package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	clientID uuid.UUID
}

func (c *stubClaims) GetClientID() uuid.UUID { return c.clientID }

type stubValidator struct {
	clientID uuid.UUID
	err      error
}

func (v *stubValidator) ValidateToken(tokenString string) (ClientIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{clientID: v.clientID}, nil
}

func callAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/search", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, captured := callAuth(t, &stubValidator{clientID: uuid.New()}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "Bearer a b"} {
		rec, _ := callAuth(t, &stubValidator{clientID: uuid.New()}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	rec, captured := callAuth(t, &stubValidator{err: fmt.Errorf("bad token")}, "Bearer abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuth_ValidTokenAddsClientID(t *testing.T) {
	clientID := uuid.New()

	rec, captured := callAuth(t, &stubValidator{clientID: clientID}, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)

	got, err := GetClientID(captured)
	require.NoError(t, err)
	assert.Equal(t, clientID, got)
}

func TestAuth_BearerPrefixCaseInsensitive(t *testing.T) {
	rec, _ := callAuth(t, &stubValidator{clientID: uuid.New()}, "bearer some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClientID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetClientID(req)
	assert.Error(t, err)
}
