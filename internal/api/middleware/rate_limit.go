package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/homebase-labs/seller-marketplace/internal/errors"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
)

// WriteRateLimit throttles authenticated write endpoints per seller. A redis
// outage fails open: throttling is protection, not correctness.
func WriteRateLimit(limiter repository.RateLimitRepository) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))

				return
			}

			allowed, retryAfter, err := limiter.CheckWriteRateLimit(r.Context(), claims.UserID)
			if err != nil {
				LoggerFromContext(r.Context()).Warn("Rate limit check failed, allowing request",
					slog.String("error", err.Error()))

				next.ServeHTTP(w, r)

				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many write requests, slow down"))

				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
