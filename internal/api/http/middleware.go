package http

import (
	"context"
	"net/http"
	"strings"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFrom extracts the verified token claims placed by the auth
// middleware. Authorization decisions are made from these claims only,
// never from anything the client sends in the body.
func ClaimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

// AuthMiddleware validates the bearer token and attaches its claims to the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorResponse{errorBody{Kind: "UNAUTHORIZED", Message: "missing bearer token"}})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{errorBody{Kind: "UNAUTHORIZED", Message: err.Error()}})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin tokens.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Role != domain.RoleAdmin {
			respondJSON(w, http.StatusForbidden, errorResponse{errorBody{Kind: "FORBIDDEN", Message: "admin role required"}})
			return
		}
		next(w, r)
	}
}

// canAccessCustomer reports whether the caller may read data belonging to
// the given customer: admins always, customer accounts only their own.
func canAccessCustomer(claims *security.UserClaims, customerID int32) bool {
	if claims == nil {
		return false
	}
	if claims.Role == domain.RoleAdmin {
		return true
	}
	return claims.CustomerID != nil && *claims.CustomerID == customerID
}
