package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/ajaxdemo/pkg/controller/http"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Burst then reject", func(t *testing.T) {
		limiter := controller.NewRateLimiter(0.001, 2)
		gt.True(t, limiter.Allow("10.0.0.1"))
		gt.True(t, limiter.Allow("10.0.0.1"))
		gt.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("Clients have separate buckets", func(t *testing.T) {
		limiter := controller.NewRateLimiter(0.001, 1)
		gt.True(t, limiter.Allow("10.0.0.1"))
		gt.True(t, limiter.Allow("10.0.0.2"))
		gt.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("Cleanup resets idle clients", func(t *testing.T) {
		limiter := controller.NewRateLimiter(0.001, 1, controller.WithIdleTTL(-1))
		gt.True(t, limiter.Allow("10.0.0.1"))
		limiter.Cleanup()
		gt.True(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("Middleware keys by remote host", func(t *testing.T) {
		limiter := controller.NewRateLimiter(0.001, 1)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		h := limiter.Middleware(next)

		call := func(remote string) int {
			req := httptest.NewRequest(http.MethodPost, "/api/actions/users", nil)
			req.RemoteAddr = remote
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w.Code
		}

		gt.Equal(t, http.StatusNoContent, call("192.0.2.1:1234"))
		// same host on another port shares the bucket
		gt.Equal(t, http.StatusTooManyRequests, call("192.0.2.1:5678"))
		gt.Equal(t, http.StatusNoContent, call("192.0.2.2:1234"))
	})
}
