package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// LogRequests tags every request with an ID and logs its
// method, path and duration.
func LogRequests(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		log := slog.With(
			"reqID", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
		)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request handled", "duration", time.Since(start))
	}
	return http.HandlerFunc(hf)
}
