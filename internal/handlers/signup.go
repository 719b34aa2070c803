package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
	"github.com/naturedex/naturedex-server/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Email already in use.
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Register a new user
// @Description Creates a new user account with role "user" and a zero usage counter. Password is hashed before storing; the hash is never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} models.User "User successfully created"
// @Failure 400 {object} handlers.SignupErrorResponse "Missing required fields"
// @Failure 409 {object} handlers.SignupErrorResponse "Email already in use"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Missing required fields.",
			})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Missing required fields.",
			})
			return
		}

		user, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailInUse):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Email already in use.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}
