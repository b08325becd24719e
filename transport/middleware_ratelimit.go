package transport

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ksagri/agroexport-api/cmd/config"
	"github.com/ksagri/agroexport-api/constant"
	redisrepo "github.com/ksagri/agroexport-api/repository/redis"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

// RateLimitMiddleware applies a fixed request budget per client address per
// window, backed by Redis counters. It fails open: a counter error lets the
// request through rather than taking the API down with Redis.
func RateLimitMiddleware(cfg *config.Config, redisRepo redisrepo.Repository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := clientAddress(r)

			count, err := redisRepo.IncrementRequestCount(r.Context(), clientIP, cfg.RateLimit.Window)
			if err != nil {
				logger.Warn("rate limit counter unavailable", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if count > cfg.RateLimit.MaxPerWin {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress resolves the originating client IP, preferring the first
// X-Forwarded-For hop when present.
func clientAddress(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
