package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/middlewares"
	"github.com/naturedex/naturedex-server/internal/models"
	"github.com/naturedex/naturedex-server/internal/services"
)

// DiscoveryAdder defines the interface for recording nature labels.
type DiscoveryAdder interface {
	AddLabel(ctx context.Context, userID int64, category, label string) (*models.DiscoveryResult, error)
}

// SummaryGetter defines the interface for naturedex summaries.
type SummaryGetter interface {
	GetSummary(ctx context.Context, userID int64) (*models.NatureSummary, error)
}

// AddDiscoveryRequest represents the JSON body for recording a discovery
// swagger:model AddDiscoveryRequest
type AddDiscoveryRequest struct {
	// User id the label belongs to
	// required: true
	// default: 1
	UserID int64 `json:"userId"`

	// Category, one of flowers, trees, rocks
	// required: true
	// default: flowers
	Category string `json:"category"`

	// Discovered label
	// required: true
	// default: daisy
	Label string `json:"label"`
}

// DiscoveryErrorResponse represents an error response for discovery operations
// swagger:model DiscoveryErrorResponse
type DiscoveryErrorResponse struct {
	// Error message
	// default: Invalid category
	Message string `json:"message"`
}

// NewAddDiscoveryHandler returns an HTTP handler that records a nature label.
// @Summary Record a nature discovery
// @Description Stores a discovered label for a user and category. Recording the same label twice reports alreadyExists.
// @Tags nature
// @Accept json
// @Produce json
// @Param addDiscoveryRequest body handlers.AddDiscoveryRequest true "Discovery to record"
// @Success 200 {object} models.DiscoveryResult "Label recorded"
// @Failure 400 {object} handlers.DiscoveryErrorResponse "Missing fields or invalid category"
// @Router /api/ai/item [post]
func NewAddDiscoveryHandler(svc DiscoveryAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddDiscoveryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiscoveryErrorResponse{
				Message: "userId, label, and category are required",
			})
			return
		}

		if req.UserID == 0 || req.Category == "" || req.Label == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiscoveryErrorResponse{
				Message: "userId, label, and category are required",
			})
			return
		}

		result, err := svc.AddLabel(r.Context(), req.UserID, req.Category, req.Label)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DiscoveryErrorResponse{
					Message: "Invalid category",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DiscoveryErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// NewNaturedexHandler returns an HTTP handler for the naturedex summary of
// the authenticated user.
// @Summary Get naturedex summary
// @Description Returns discovery counts and achievements per category for the authenticated user.
// @Tags nature
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.NatureSummary "Counts and achievements"
// @Failure 401 {object} handlers.DiscoveryErrorResponse "Missing or invalid token"
// @Router /api/ai/naturedex [get]
func NewNaturedexHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		summary, err := svc.GetSummary(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DiscoveryErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
