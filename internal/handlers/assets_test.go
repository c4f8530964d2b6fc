package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAssetLister(ctrl)
	handler := NewAssetsHandler(mockSvc, testPages)

	t.Run("public listing", func(t *testing.T) {
		mockSvc.EXPECT().ListAssets(gomock.Any(), models.Page{Number: 1, Limit: 1}).
			Return(&models.ContributionPage{
				Data:       []models.Contribution{{ID: 3, Status: models.StatusVerified}},
				Pagination: models.PageMeta{Page: 1, Limit: 1, Total: 1, Pages: 1},
			}, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets?limit=0", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.ContributionPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, models.StatusVerified, resp.Data[0].Status)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().ListAssets(gomock.Any(), gomock.Any()).Return(nil, services.ErrPersistence)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("negative page", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assets?page=-2", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestPresignHandler(t *testing.T) {
	tests := []struct {
		name         string
		inputBody    PresignRequest
		mockSetup    func(m *MockUploadPresigner)
		expectedCode int
		expectedErr  string
	}{
		{
			name:      "success",
			inputBody: PresignRequest{Filename: "logo.png", ContentType: "image/png"},
			mockSetup: func(m *MockUploadPresigner) {
				m.EXPECT().Presign(gomock.Any(), int64(1), "logo.png", "image/png").Return(&models.PresignedUpload{
					UploadURL: "https://files.example.com/upload/k.png",
					FileURL:   "https://files.example.com/files/k.png",
					ExpiresIn: 3600,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "missing filename",
			inputBody: PresignRequest{ContentType: "image/png"},
			mockSetup: func(m *MockUploadPresigner) {
				m.EXPECT().Presign(gomock.Any(), int64(1), "", "image/png").Return(nil, services.ErrFilenameRequired)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "Filename required",
		},
		{
			name:      "content type not allowed",
			inputBody: PresignRequest{Filename: "a.exe", ContentType: "application/x-msdownload"},
			mockSetup: func(m *MockUploadPresigner) {
				m.EXPECT().Presign(gomock.Any(), int64(1), "a.exe", "application/x-msdownload").
					Return(nil, fmt.Errorf("%w: allowed: image/png", services.ErrContentTypeNotAccepted))
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "content type not allowed: allowed: image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockUploadPresigner(ctrl)
			tt.mockSetup(mockSvc)

			body, _ := json.Marshal(tt.inputBody)
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/assets/presign", bytes.NewReader(body)), 1, false)
			w := httptest.NewRecorder()

			NewPresignHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}
			var resp models.PresignedUpload
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, 3600, resp.ExpiresIn)
		})
	}
}
