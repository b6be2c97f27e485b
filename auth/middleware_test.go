package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoPrincipal is a terminal handler that records the principal resolved
// by the middleware under test.
func echoPrincipal(captured **User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*captured = principal
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	store := newFakeUserStore()
	service := NewAuthService(store, testAuthConfig())
	user := registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	token, _, err := service.Codec().Issue(user.Username, user.ID)
	require.NoError(t, err)

	var captured *User
	handler := RequireAuth(service.Codec(), store)(echoPrincipal(&captured))

	req := httptest.NewRequest(http.MethodGet, "/v1/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, user.ID, captured.ID)
	assert.Equal(t, "joaosilva", captured.Username)
}

func TestRequireAuth_Rejections(t *testing.T) {
	store := newFakeUserStore()
	service := NewAuthService(store, testAuthConfig())
	user := registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	validToken, _, err := service.Codec().Issue(user.Username, user.ID)
	require.NoError(t, err)

	expiredCodec := NewTokenCodec("test-secret-key", -time.Hour)
	expiredToken, _, err := expiredCodec.Issue(user.Username, user.ID)
	require.NoError(t, err)

	foreignCodec := NewTokenCodec("another-secret", time.Hour)
	foreignToken, _, err := foreignCodec.Issue(user.Username, user.ID)
	require.NoError(t, err)

	// Well-signed but carries no usable principal id.
	anonymousToken, _, err := service.Codec().Issue(user.Username, 0)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic am9hbzpzZW5oYQ=="},
		{"scheme without token", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signing key", "Bearer " + foreignToken},
		{"token without user id", "Bearer " + anonymousToken},
	}

	handler := RequireAuth(service.Codec(), store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/usuarios", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	// All rejections above share one response body with the valid-token
	// failure mode below: a deleted user presenting a still-valid token.
	store.delete(user.ID)
	req := httptest.NewRequest(http.MethodGet, "/v1/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RoleChangeTakesEffectNextRequest(t *testing.T) {
	store := newFakeUserStore()
	service := NewAuthService(store, testAuthConfig())
	user := registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	token, _, err := service.Codec().Issue(user.Username, user.ID)
	require.NoError(t, err)

	var captured *User
	handler := RequireAuth(service.Codec(), store)(echoPrincipal(&captured))

	req := httptest.NewRequest(http.MethodGet, "/v1/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RoleUser, captured.Role)

	// Promote in the store; the same token resolves the new role.
	store.mu.Lock()
	store.users[user.ID].Role = RoleAdmin
	store.mu.Unlock()

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(context.Background()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RoleAdmin, captured.Role)
}
