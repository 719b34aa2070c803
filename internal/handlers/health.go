package handlers

import "net/http"

// NewHealthHandler returns a trivial liveness handler.
// @Summary Health check
// @Description Confirms the server is up.
// @Tags health
// @Produce plain
// @Success 200 {string} string "server is running"
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("server is running"))
	}
}
