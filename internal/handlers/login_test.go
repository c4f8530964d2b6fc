package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Identifier: "john", Password: "Secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "Secret123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: LoginResponse{AccessToken: "JWT_TOKEN", TokenType: "bearer"},
		},
		{
			name:      "invalid credentials",
			inputBody: LoginRequest{Identifier: "john@example.com", Password: "wrong"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: ErrorResponse{Error: "Incorrect username/email or password"},
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Identifier: "john", Password: "Secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "Secret123").
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: ErrorResponse{Error: "Internal server error"},
		},
		{
			name:         "missing password",
			inputBody:    LoginRequest{Identifier: "john"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "identifier and password are required"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid-json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			if s, ok := tt.inputBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.inputBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			switch expected := tt.expectedBody.(type) {
			case LoginResponse:
				var resp LoginResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, expected, resp)
			case ErrorResponse:
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, expected, resp)
			}
		})
	}

	t.Run("unauthorized sets challenge header", func(t *testing.T) {
		mockSvc.EXPECT().Login(gomock.Any(), "x", "y").Return("", services.ErrInvalidCredentials)
		body, _ := json.Marshal(LoginRequest{Identifier: "x", Password: "y"})
		w := httptest.NewRecorder()
		NewLoginHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body)))
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})
}
