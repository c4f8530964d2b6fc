package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageConfigParse(t *testing.T) {
	maxPage := math.MaxInt / testPages.MaxLimit

	tests := []struct {
		name        string
		query       string
		expected    models.Page
		expectedErr string
	}{
		{name: "defaults", query: "", expected: models.Page{Number: 1, Limit: 20}},
		{name: "explicit", query: "?page=3&limit=10", expected: models.Page{Number: 3, Limit: 10}},
		{name: "limit clamped to max", query: "?limit=1000", expected: models.Page{Number: 1, Limit: 100}},
		{name: "limit clamped to one", query: "?limit=-5", expected: models.Page{Number: 1, Limit: 1}},
		{name: "largest page", query: "?limit=100&page=" + strconv.Itoa(maxPage), expected: models.Page{Number: maxPage, Limit: 100}},
		{name: "zero page", query: "?page=0", expectedErr: "Page must be >= 1"},
		{name: "non-integer page", query: "?page=x", expectedErr: "Page must be >= 1"},
		{name: "non-integer limit", query: "?limit=x", expectedErr: "Limit must be an integer"},
		{name: "page past offset range", query: "?limit=100&page=" + strconv.Itoa(maxPage+1), expectedErr: "Page out of range"},
		{name: "max int page", query: "?limit=100&page=9223372036854775807", expectedErr: "Page out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := testPages.Parse(httptest.NewRequest(http.MethodGet, "/api/assets"+tt.query, nil))
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
			assert.GreaterOrEqual(t, page.Offset(), 0)
		})
	}
}
