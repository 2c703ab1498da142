package api

import (
	"net/http"
	"strconv"
)

// queryInt reads an integer query parameter, falling back to the default when
// the parameter is absent or not a number.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// parsePagination reads the page/limit query pair with the conventional
// defaults. Out-of-range values are clamped downstream.
func parsePagination(r *http.Request) (page, limit int) {
	return queryInt(r, "page", 1), queryInt(r, "limit", 10)
}
