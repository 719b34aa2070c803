package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/jwt"
	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsKey is the context key under which verified claims are stored.
type claimsKey struct{}

// SetClaimsToContext stores verified claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves verified claims from the context.
// Returns nil if the request never passed the Authenticator.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Authenticator returns a middleware that extracts and verifies a bearer
// token, storing its claims in the request context. A missing, malformed,
// expired or otherwise invalid token is uniformly a 401; downstream never
// learns which.
func Authenticator(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

// RequireAdmin gates a route on the admin role. It must run after
// Authenticator. The role claim is compared verbatim against "admin";
// any other value, recognized or not, is a 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if claims.Role != models.RoleAdmin {
			logger.Log.Errorw("admin access denied", "role", claims.Role, "user_id", claims.UserID)
			writeError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}

		next.ServeHTTP(w, r)
	})
}
