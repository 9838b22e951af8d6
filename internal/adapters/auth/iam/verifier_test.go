package iam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIAM(t *testing.T, status int, body any) *Verifier {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		assert.Equal(t, "tok", in["token"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)
	return NewVerifier(c)
}

func TestVerify_OK(t *testing.T) {
	v := newIAM(t, http.StatusOK, map[string]string{"user_id": " u-1 ", "username": "ana"})

	claims, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newIAM(t, http.StatusUnauthorized, map[string]string{"error": "expired"})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_Upstream(t *testing.T) {
	v := newIAM(t, http.StatusBadGateway, nil)

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerify_MissingUserID(t *testing.T) {
	v := newIAM(t, http.StatusOK, map[string]string{"username": "ana"})

	_, err := v.Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerify_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = NewVerifier(c).Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(c).Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
