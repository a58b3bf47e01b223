package server

import (
	"net/http"
	"sync"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	clientTTL       = 3 * time.Minute
	cleanupInterval = time.Minute
)

// ipLimiter hands out one token bucket per client IP. Entries not seen for
// clientTTL are dropped by a background sweep so the map stays bounded.
type ipLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rps     rate.Limit
	burst   int
}

type clientBucket struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	l := &ipLimiter{
		clients: make(map[string]*clientBucket),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	go l.sweep()

	return l
}

func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, c := range l.clients {
			if time.Since(c.lastSeen) > clientTTL {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &clientBucket{bucket: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.bucket.Allow()
}

// RateLimitMiddleware rejects clients exceeding rps with burst headroom.
// Limits come from RATE_LIMIT_RPS / RATE_LIMIT_BURST via config.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := newIPLimiter(rps, burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.allow(ip) {
			metrics.RecordRateLimited()
			logger.Info("Request rate limited", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many requests, slow down"})
			return
		}
		c.Next()
	}
}
