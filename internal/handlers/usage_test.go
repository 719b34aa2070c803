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

	"github.com/naturedex/naturedex-server/internal/services"
)

func TestAddUsageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setup          func(svc *MockUsageAdder)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: `{"email":"al@x.com"}`,
			setup: func(svc *MockUsageAdder) {
				svc.EXPECT().Add(gomock.Any(), "al@x.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "InvalidJSON",
			body:           `{not json`,
			setup:          func(svc *MockUsageAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name:           "MissingEmail",
			body:           `{}`,
			setup:          func(svc *MockUsageAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name: "UserNotFound",
			body: `{"email":"ghost@x.com"}`,
			setup: func(svc *MockUsageAdder) {
				svc.EXPECT().Add(gomock.Any(), "ghost@x.com").Return(services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found.",
		},
		{
			name: "InternalError",
			body: `{"email":"al@x.com"}`,
			setup: func(svc *MockUsageAdder) {
				svc.EXPECT().Add(gomock.Any(), "al@x.com").Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUsageAdder(ctrl)
			tt.setup(svc)

			handler := NewAddUsageHandler(svc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/add", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var resp UsageErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp AddUsageResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, int64(1), resp.AffectedRows)
		})
	}
}

func TestGetUsageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		query          string
		setup          func(svc *MockUsageGetter)
		expectedStatus int
		expectedError  string
		expectedAmount int64
	}{
		{
			name:  "Success",
			query: "?userId=1",
			setup: func(svc *MockUsageGetter) {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(int64(7), nil)
			},
			expectedStatus: http.StatusOK,
			expectedAmount: 7,
		},
		{
			name:           "MissingUserID",
			query:          "",
			setup:          func(svc *MockUsageGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name:           "NonNumericUserID",
			query:          "?userId=abc",
			setup:          func(svc *MockUsageGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name:           "NonPositiveUserID",
			query:          "?userId=0",
			setup:          func(svc *MockUsageGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields.",
		},
		{
			name:  "UserNotFound",
			query: "?userId=99",
			setup: func(svc *MockUsageGetter) {
				svc.EXPECT().Get(gomock.Any(), int64(99)).Return(int64(0), services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found.",
		},
		{
			name:  "InternalError",
			query: "?userId=1",
			setup: func(svc *MockUsageGetter) {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(int64(0), errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUsageGetter(ctrl)
			tt.setup(svc)

			handler := NewGetUsageHandler(svc)
			req := httptest.NewRequest(http.MethodGet, "/api/auth/get"+tt.query, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var resp UsageErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp GetUsageResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedAmount, resp.Amount)
		})
	}
}
