package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/middlewares"
)

// CurrentUserResponse is the current user derived from token claims
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	// User id
	ID int64 `json:"id"`
	// Username
	Username string `json:"username"`
	// Email
	Email string `json:"email"`
	// Role
	Role string `json:"role"`
}

// NewCurrentUserHandler returns an HTTP handler for the current-user lookup.
// The response is built entirely from the verified token claims; the store
// is not consulted.
// @Summary Get current user
// @Description Returns the authenticated user's identity as encoded in the presented token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.CurrentUserResponse "Current user"
// @Failure 401 {object} handlers.LoginErrorResponse "Missing or invalid token"
// @Router /api/auth/current-user [get]
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CurrentUserResponse{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			Role:     claims.Role,
		})
	}
}
