package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit caps requests per client IP in fixed windows. Generation calls
// are expensive upstream, so the limiter answers 429 with a Retry-After and
// the API's JSON error shape instead of a bare status.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			now := time.Now()

			mu.Lock()
			win, ok := windows[ip]
			if !ok || now.After(win.resetAt) {
				win = &rateWindow{resetAt: now.Add(per)}
				windows[ip] = win
			}
			if win.count >= limit {
				retryAfter := win.resetAt
				mu.Unlock()
				seconds := int(time.Until(retryAfter).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests, slow down"}}` + "\n"))
				return
			}
			win.count++
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys the limiter. RealIP runs earlier in the chain, so RemoteAddr
// already holds the forwarded address when one was supplied; it may or may
// not carry a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
