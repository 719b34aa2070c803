package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturedex/naturedex-server/internal/models"
	"github.com/naturedex/naturedex-server/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setup          func(svc *MockLoginer)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: `{"email":"al@x.com","password":"s3cret"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "al@x.com", "s3cret").
					Return("signed-token", &models.User{ID: 1, Username: "al", Email: "al@x.com", Role: models.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "InvalidJSON",
			body:           `{not json`,
			setup:          func(svc *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name:           "MissingEmail",
			body:           `{"password":"s3cret"}`,
			setup:          func(svc *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name: "InvalidCredentials",
			body: `{"email":"al@x.com","password":"wrong"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "al@x.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password.",
		},
		{
			name: "InternalError",
			body: `{"email":"al@x.com","password":"s3cret"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "al@x.com", "s3cret").
					Return("", nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.setup(svc)

			handler := NewLoginHandler(svc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var resp LoginErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp LoginResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "signed-token", resp.Token)
			assert.Equal(t, int64(1), resp.User.ID)
			assert.Equal(t, "al", resp.User.Username)
			assert.Equal(t, "al@x.com", resp.User.Email)
			assert.Equal(t, models.RoleAdmin, resp.User.Role)
		})
	}
}
