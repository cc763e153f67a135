package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow counts hits per key inside a moving time window
type slidingWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	store  map[string][]time.Time
}

func newSlidingWindow(max int, window time.Duration) *slidingWindow {
	w := &slidingWindow{max: max, window: window, store: make(map[string][]time.Time)}
	// periodic cleanup of idle keys
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			w.sweep(time.Now())
		}
	}()
	return w
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (w *slidingWindow) sweep(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cutoff := now.Add(-w.window)
	for key, ts := range w.store {
		if kept := prune(ts, cutoff); len(kept) == 0 {
			delete(w.store, key)
		} else {
			w.store[key] = kept
		}
	}
}

// allow records a hit for key unless the window is full
func (w *slidingWindow) allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	ts := prune(w.store[key], now.Add(-w.window))
	if len(ts) >= w.max {
		w.store[key] = ts
		return false
	}
	w.store[key] = append(ts, now)
	return true
}

// WriteRateLimit limits mutating requests (anything but GET, HEAD and OPTIONS)
// to max per window for each authenticated user, or per client IP before auth.
func WriteRateLimit(max int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(max, window)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if userID := GetCurrentUserID(c); userID != 0 {
			key = fmt.Sprintf("user:%d", userID)
		}

		if !limiter.allow(key, time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "demasiadas operaciones, inténtalo de nuevo más tarde",
			})
			return
		}
		c.Next()
	}
}
