package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/commonshub/signup/pkg/logger"
)

// Middleware creates HTTP middleware that enforces rate limits using the
// provided Limiter and KeyFunc. Limiter errors fail open so a broken
// store throttles nothing instead of taking the endpoint down.
// Rejections are logged as security events for operational monitoring.
func Middleware(limiter Limiter, keyFunc KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if keyFunc == nil {
		panic("ratelimit.Middleware: keyFunc is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.UnixMilli(), 10))

			if !result.Allowed {
				if log != nil {
					logger.SecurityEvent(r.Context(), log, "rate_limit_exceeded", logger.SeverityMedium,
						slog.String("key", key),
						slog.String("path", r.URL.Path),
						slog.Time("reset_at", result.ResetAt),
					)
				}

				retryAfter := int(result.RetryAfter().Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
