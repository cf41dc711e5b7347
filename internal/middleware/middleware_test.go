package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"halalpoultry-be/internal/auth"
	"halalpoultry-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	probe := func(gotID *string, gotOK *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*gotID, *gotOK = utils.GetUserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("Success_ValidToken", func(t *testing.T) {
		token, err := auth.GenerateToken("user-1", "owner@resto.com", "Aisha", "Khan")
		require.NoError(t, err)

		var gotID string
		var gotOK bool
		r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AuthMiddleware(probe(&gotID, &gotOK)).ServeHTTP(w, r)

		assert.True(t, gotOK)
		assert.Equal(t, "user-1", gotID)
	})

	t.Run("Anonymous_PassesThrough", func(t *testing.T) {
		var gotID string
		var gotOK bool
		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(probe(&gotID, &gotOK)).ServeHTTP(w, r)

		assert.False(t, gotOK)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Garbage_Token_PassesThroughAnonymous", func(t *testing.T) {
		var gotID string
		var gotOK bool
		r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		AuthMiddleware(probe(&gotID, &gotOK)).ServeHTTP(w, r)

		assert.False(t, gotOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Allows_WithinBurst", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Blocks_AfterBurstExhausted", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+2; i++ {
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			r.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}

func TestResolveRateTier(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/auth/profile", nil)
	_, _, tier := resolveRateTier(r)
	assert.Equal(t, "strict", tier)

	r = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	_, _, tier = resolveRateTier(r)
	assert.Equal(t, "general", tier)
}
