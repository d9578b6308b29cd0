package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/error/code"
	"gateapp-http-service/internal/error/response"
)

// tokenBucket is a per-client token bucket
type tokenBucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

func (b *tokenBucket) take() bool {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.lastRefill = now

	b.tokens += elapsed * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RateLimiter limits each client IP to rate requests per second with the
// given burst capacity
func RateLimiter(rate float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*tokenBucket)

	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()

		mu.Lock()
		bucket, ok := buckets[ip]
		if !ok {
			bucket = &tokenBucket{
				tokens:     float64(burst),
				capacity:   float64(burst),
				refillRate: rate,
				lastRefill: time.Now(),
			}
			buckets[ip] = bucket
		}
		allowed := bucket.take()
		mu.Unlock()

		if !allowed {
			response.Fail(ctx, code.ErrTooManyRequests, nil)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
