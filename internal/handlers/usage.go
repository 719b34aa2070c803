package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/services"
)

// UsageAdder defines the interface for incrementing usage counters.
type UsageAdder interface {
	Add(ctx context.Context, email string) error
}

// UsageGetter defines the interface for reading usage counters.
type UsageGetter interface {
	Get(ctx context.Context, userID int64) (int64, error)
}

// AddUsageRequest represents the JSON body for a usage increment
// swagger:model AddUsageRequest
type AddUsageRequest struct {
	// Email of the user whose counter grows
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// AddUsageResponse acknowledges a usage increment
// swagger:model AddUsageResponse
type AddUsageResponse struct {
	// Rows affected by the update
	// default: 1
	AffectedRows int64 `json:"affected_rows"`
}

// GetUsageResponse carries a user's usage counter
// swagger:model GetUsageResponse
type GetUsageResponse struct {
	// Current api_usage_count
	// default: 0
	Amount int64 `json:"amount"`
}

// UsageErrorResponse represents an error response for usage operations
// swagger:model UsageErrorResponse
type UsageErrorResponse struct {
	// Error message
	// default: User not found.
	Error string `json:"error"`
}

// NewAddUsageHandler returns an HTTP handler that increments a user's
// api_usage_count. Called by the AI collaborator after each service call.
// @Summary Increment usage counter
// @Description Adds one to the api_usage_count of the user with the given email.
// @Tags usage
// @Accept json
// @Produce json
// @Param addUsageRequest body handlers.AddUsageRequest true "Usage increment request"
// @Success 200 {object} handlers.AddUsageResponse "Counter incremented"
// @Failure 400 {object} handlers.UsageErrorResponse "Missing email"
// @Failure 404 {object} handlers.UsageErrorResponse "No user with that email"
// @Router /api/auth/add [post]
func NewAddUsageHandler(svc UsageAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUsageRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UsageErrorResponse{
				Error: "Missing required fields.",
			})
			return
		}

		if err := svc.Add(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UsageErrorResponse{
					Error: "User not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UsageErrorResponse{
					Error: "Internal server error.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddUsageResponse{AffectedRows: 1})
	}
}

// NewGetUsageHandler returns an HTTP handler that reads a user's
// api_usage_count by id.
// @Summary Get usage counter
// @Description Returns the api_usage_count of the user with the given id.
// @Tags usage
// @Produce json
// @Param userId query int true "User id"
// @Success 200 {object} handlers.GetUsageResponse "Current counter"
// @Failure 400 {object} handlers.UsageErrorResponse "Missing or invalid userId"
// @Failure 404 {object} handlers.UsageErrorResponse "No user with that id"
// @Router /api/auth/get [get]
func NewGetUsageHandler(svc UsageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
		if err != nil || userID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UsageErrorResponse{
				Error: "Missing required fields.",
			})
			return
		}

		amount, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UsageErrorResponse{
					Error: "User not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UsageErrorResponse{
					Error: "Internal server error.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetUsageResponse{Amount: amount})
	}
}
