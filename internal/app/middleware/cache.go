package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cachedResponse is one stored response body
type cachedResponse struct {
	status    int
	body      []byte
	headers   http.Header
	expiresAt time.Time
}

// bodyCapture tees the response body so it can be stored
type bodyCapture struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCapture) Write(data []byte) (int, error) {
	w.buf.Write(data)
	return w.ResponseWriter.Write(data)
}

// Aggregate counters across every ResponseCache instance
var (
	statsMu     sync.Mutex
	cacheHits   uint64
	cacheMisses uint64
	cacheStores uint64
)

// CacheStats reports hit/miss/store counts for the response cache
func CacheStats() map[string]interface{} {
	statsMu.Lock()
	defer statsMu.Unlock()
	return map[string]interface{}{
		"hits":   cacheHits,
		"misses": cacheMisses,
		"stores": cacheStores,
	}
}

// ResponseCache caches GET responses by URL for the given TTL. Only cheap
// static endpoints like health checks belong behind it; the visitor
// aggregation routes must never be cached.
func ResponseCache(ttl time.Duration) gin.HandlerFunc {
	var mu sync.RWMutex
	cache := make(map[string]*cachedResponse)

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.String()

		mu.RLock()
		entry, ok := cache[key]
		mu.RUnlock()
		if ok && time.Now().Before(entry.expiresAt) {
			statsMu.Lock()
			cacheHits++
			statsMu.Unlock()

			ctx.Writer.Header().Set("X-Cache", "HIT")
			ctx.Data(entry.status, entry.headers.Get("Content-Type"), entry.body)
			ctx.Abort()
			return
		}

		statsMu.Lock()
		cacheMisses++
		statsMu.Unlock()

		capture := &bodyCapture{ResponseWriter: ctx.Writer, buf: &bytes.Buffer{}}
		ctx.Writer = capture
		ctx.Next()

		if capture.Status() == http.StatusOK {
			mu.Lock()
			cache[key] = &cachedResponse{
				status:    capture.Status(),
				body:      capture.buf.Bytes(),
				headers:   capture.Header().Clone(),
				expiresAt: time.Now().Add(ttl),
			}
			mu.Unlock()

			statsMu.Lock()
			cacheStores++
			statsMu.Unlock()
		}
	}
}
