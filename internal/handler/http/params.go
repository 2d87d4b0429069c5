package http

import (
	"net/http"
	"time"
)

// queryDate parses a YYYY-MM-DD query parameter, returning fallback when the
// parameter is absent.
func queryDate(r *http.Request, name string, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
