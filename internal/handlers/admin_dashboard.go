package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/middlewares"
)

// AdminDashboardResponse greets an admin with their own claims
// swagger:model AdminDashboardResponse
type AdminDashboardResponse struct {
	// Welcome message
	// default: Welcome to the admin dashboard!
	Message string `json:"message"`

	// Admin user
	User CurrentUserResponse `json:"user"`
}

// NewAdminDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Admin dashboard
// @Description Returns a welcome payload for the authenticated admin. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.AdminDashboardResponse "Dashboard payload"
// @Failure 401 {object} handlers.LoginErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.LoginErrorResponse "Valid token without admin role"
// @Router /api/auth/admin-dashboard [get]
func NewAdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminDashboardResponse{
			Message: "Welcome to the admin dashboard!",
			User: CurrentUserResponse{
				ID:       claims.UserID,
				Username: claims.Username,
				Email:    claims.Email,
				Role:     claims.Role,
			},
		})
	}
}
