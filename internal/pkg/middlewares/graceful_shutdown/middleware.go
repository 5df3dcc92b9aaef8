package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"logistics/internal/handlers/rest/response"
)

const shuttingDownMessage = "service is shutting down"

// Middleware отвечает 503 на новые запросы, когда ongoingCtx уже отменен
// и сервис помечен как останавливающийся.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					_ = response.Message(w, http.StatusServiceUnavailable, shuttingDownMessage)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
