package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UsersResponse wraps the admin user listing
// swagger:model UsersResponse
type UsersResponse struct {
	// All user records (public fields only)
	Result []models.User `json:"result"`
}

// NewUsersHandler returns an HTTP handler for the admin user listing.
// @Summary List all users
// @Description Returns every user record's public fields. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UsersResponse "All users"
// @Failure 401 {object} handlers.LoginErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.LoginErrorResponse "Valid token without admin role"
// @Router /api/auth/users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{Result: users})
	}
}
