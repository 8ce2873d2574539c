package http

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDFromContext returns the request id set by the middleware, if any
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// errorWriter sends an error response; the server's is writeError
type errorWriter func(w http.ResponseWriter, r *http.Request, status int, message string)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// requestIDMiddleware propagates a client supplied X-Request-ID or assigns a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		logger.Info("HTTP request",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", wrapped.status),
			slog.Int("bytes", wrapped.size),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// securityHeadersMiddleware adds security headers to all responses
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// JSON only, nothing to load or frame
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")

		next.ServeHTTP(w, r)
	})
}

// rateLimiter keeps one token bucket per client IP
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	every     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter allows limit requests per window per client, refilling evenly
func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients:   make(map[string]*clientLimiter),
		every:     rate.Every(window / time.Duration(limit)),
		burst:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// isAllowed takes a token from the client's bucket
func (rl *rateLimiter) isAllowed(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Idle clients are swept inline instead of by a background goroutine
	if now.Sub(rl.lastSweep) > 5*rl.window {
		cutoff := now.Add(-rl.window)
		for addr, client := range rl.clients {
			if client.lastSeen.Before(cutoff) {
				delete(rl.clients, addr)
			}
		}
		rl.lastSweep = now
	}

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// retryAfter is the refill time of one token in whole seconds
func (rl *rateLimiter) retryAfter() int {
	return int(math.Ceil((rl.window / time.Duration(rl.burst)).Seconds()))
}

// rateLimitMiddleware rejects clients exceeding the limiter's budget
func rateLimitMiddleware(next http.Handler, limiter *rateLimiter, writeError errorWriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.isAllowed(getClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(limiter.retryAfter()))
			writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP extracts the real client IP address
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := net.ParseIP(xff); ip != nil {
			return ip.String()
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(next http.Handler, logger *slog.Logger, writeError errorWriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered in HTTP handler",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.Any("panic", err),
				)
				writeError(w, r, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
