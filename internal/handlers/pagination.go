package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-veritas/internal/models"
)

// PageConfig holds the page size limits of listing endpoints.
type PageConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// Parse reads page and limit from the query string. page must be a positive
// integer small enough that its row offset fits in an int; limit is clamped
// to [1, MaxLimit] and defaults to DefaultLimit.
func (c PageConfig) Parse(r *http.Request) (models.Page, error) {
	q := r.URL.Query()
	page := models.Page{Number: 1, Limit: c.DefaultLimit}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, errors.New("Page must be >= 1")
		}
		if n > math.MaxInt/max(c.MaxLimit, 1) {
			return page, errors.New("Page out of range")
		}
		page.Number = n
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page, errors.New("Limit must be an integer")
		}
		page.Limit = n
	}
	if page.Limit < 1 {
		page.Limit = 1
	}
	if page.Limit > c.MaxLimit {
		page.Limit = c.MaxLimit
	}
	return page, nil
}
