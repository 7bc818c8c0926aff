package middlewares

import (
	"net/http"
	"time"

	"pr-webhook-service/internal/infrastructure/logger"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLoggerMiddleware logs every request with method, path, status
// and duration, tagged with the chi request id.
func RequestLoggerMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
