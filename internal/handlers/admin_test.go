package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPendingLister(ctrl)
	handler := NewPendingHandler(mockSvc, testPages)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ListPending(gomock.Any(), int64(100), models.Page{Number: 2, Limit: 5}).
			Return(&models.ContributionPage{
				Data:       []models.Contribution{{ID: 1, User: &models.UserSummary{ID: 4, Username: "bob"}}},
				Pagination: models.PageMeta{Page: 2, Limit: 5, Total: 6, Pages: 2},
			}, nil)

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/pending?page=2&limit=5", nil), 100, true)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.ContributionPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "bob", resp.Data[0].User.Username)
		assert.Equal(t, 6, resp.Pagination.Total)
	})

	t.Run("revoked admin", func(t *testing.T) {
		mockSvc.EXPECT().ListPending(gomock.Any(), int64(100), gomock.Any()).Return(nil, services.ErrAuthorizationDenied)

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/pending", nil), 100, true)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/pending?page=x", nil), 100, true)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestVerifyHandler(t *testing.T) {
	verified := &models.Contribution{ID: 7, Status: models.StatusVerified}

	tests := []struct {
		name            string
		id              string
		inputBody       interface{}
		mockSetup       func(m *MockDecisionApplier)
		expectedCode    int
		expectedErr     string
		expectedOutcome models.DecisionOutcome
		expectedMessage string
	}{
		{
			name:      "applied",
			id:        "7",
			inputBody: VerifyRequest{Decision: "APPROVE", Notes: strPtr("  looks good ")},
			mockSetup: func(m *MockDecisionApplier) {
				m.EXPECT().ApplyDecision(gomock.Any(), int64(100), int64(7), models.DecisionApprove, strPtr("looks good")).
					Return(verified, models.OutcomeApplied, nil)
			},
			expectedCode:    http.StatusOK,
			expectedOutcome: models.OutcomeApplied,
			expectedMessage: "Contribution is now VERIFIED",
		},
		{
			name:      "already decided",
			id:        "7",
			inputBody: VerifyRequest{Decision: "REJECT", Notes: strPtr("   ")},
			mockSetup: func(m *MockDecisionApplier) {
				m.EXPECT().ApplyDecision(gomock.Any(), int64(100), int64(7), models.DecisionReject, nil).
					Return(verified, models.OutcomeAlreadyDecided, nil)
			},
			expectedCode:    http.StatusOK,
			expectedOutcome: models.OutcomeAlreadyDecided,
			expectedMessage: "Contribution was already VERIFIED",
		},
		{
			name:      "not found",
			id:        "7",
			inputBody: VerifyRequest{Decision: "APPROVE"},
			mockSetup: func(m *MockDecisionApplier) {
				m.EXPECT().ApplyDecision(gomock.Any(), int64(100), int64(7), models.DecisionApprove, nil).
					Return(nil, models.DecisionOutcome(""), services.ErrContributionNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Submission not found",
		},
		{
			name:      "admin revoked",
			id:        "7",
			inputBody: VerifyRequest{Decision: "APPROVE"},
			mockSetup: func(m *MockDecisionApplier) {
				m.EXPECT().ApplyDecision(gomock.Any(), int64(100), int64(7), models.DecisionApprove, nil).
					Return(nil, models.DecisionOutcome(""), services.ErrAuthorizationDenied)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  "Admin access required",
		},
		{
			name:      "persistence failure",
			id:        "7",
			inputBody: VerifyRequest{Decision: "APPROVE"},
			mockSetup: func(m *MockDecisionApplier) {
				m.EXPECT().ApplyDecision(gomock.Any(), int64(100), int64(7), models.DecisionApprove, nil).
					Return(nil, models.DecisionOutcome(""), errors.New("lock timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "unknown decision",
			id:           "7",
			inputBody:    VerifyRequest{Decision: "MAYBE"},
			mockSetup:    func(m *MockDecisionApplier) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Decision must be one of: APPROVE, REJECT, REQUEST_CHANGES",
		},
		{
			name:         "notes too long",
			id:           "7",
			inputBody:    VerifyRequest{Decision: "APPROVE", Notes: strPtr(strings.Repeat("n", 5001))},
			mockSetup:    func(m *MockDecisionApplier) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Notes max 5,000 characters",
		},
		{
			name:         "bad id",
			id:           "-1",
			inputBody:    VerifyRequest{Decision: "APPROVE"},
			mockSetup:    func(m *MockDecisionApplier) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Invalid contribution id",
		},
		{
			name:         "invalid json",
			id:           "7",
			inputBody:    "nope",
			mockSetup:    func(m *MockDecisionApplier) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockDecisionApplier(ctrl)
			tt.mockSetup(mockSvc)

			var body []byte
			if s, ok := tt.inputBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.inputBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/admin/verify/"+tt.id, bytes.NewReader(body))
			req = asUser(withID(req, tt.id), 100, true)
			w := httptest.NewRecorder()

			NewVerifyHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}
			var resp VerifyResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedOutcome, resp.Outcome)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, int64(7), resp.Contribution.ID)
		})
	}
}

func TestVerificationLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDecisionApplier(ctrl)
	handler := NewVerificationLogsHandler(mockSvc)

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/contributions/7/logs", nil)
		return asUser(withID(req, "7"), 100, true)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ListLogs(gomock.Any(), int64(100), int64(7)).Return([]models.VerificationLog{
			{ID: 1, ContributionID: 7, AdminID: 100, Decision: models.DecisionApprove},
			{ID: 2, ContributionID: 7, AdminID: 101, Decision: models.DecisionReject, IsDuplicate: true},
		}, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newReq())

		require.Equal(t, http.StatusOK, w.Code)
		var resp []models.VerificationLog
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.True(t, resp[1].IsDuplicate)
	})

	t.Run("empty trail is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().ListLogs(gomock.Any(), int64(100), int64(7)).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		mockSvc.EXPECT().ListLogs(gomock.Any(), int64(100), int64(7)).Return(nil, services.ErrAuthorizationDenied)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().ListLogs(gomock.Any(), int64(100), int64(7)).Return(nil, services.ErrContributionNotFound)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Submission not found"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().ListLogs(gomock.Any(), int64(100), int64(7)).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
