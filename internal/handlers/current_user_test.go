package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturedex/naturedex-server/internal/jwt"
	"github.com/naturedex/naturedex-server/internal/middlewares"
	"github.com/naturedex/naturedex-server/internal/models"
)

func TestCurrentUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		claims := &jwt.Claims{UserID: 1, Username: "al", Email: "al@x.com", Role: models.RoleUser}

		handler := NewCurrentUserHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp CurrentUserResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "al", resp.Username)
		assert.Equal(t, "al@x.com", resp.Email)
		assert.Equal(t, models.RoleUser, resp.Role)
	})

	t.Run("NoClaims", func(t *testing.T) {
		handler := NewCurrentUserHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
