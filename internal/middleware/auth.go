package middleware

import (
	"context"
	"net/http"

	"halalpoultry-be/internal/auth"
	"halalpoultry-be/internal/utils"
)

type contextKey string

// TokenClaimsKey holds the parsed identity claims for downstream handlers.
const TokenClaimsKey contextKey = "identityClaims"

// AuthMiddleware resolves the caller's identity from the access token, if one
// is present. Anonymous requests pass through; handlers that require identity
// reject them individually.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
		ctx = utils.SetUserContext(ctx, claims.Subject, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the identity claims set by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*auth.IdentityClaims, bool) {
	claims, ok := ctx.Value(TokenClaimsKey).(*auth.IdentityClaims)
	return claims, ok
}
