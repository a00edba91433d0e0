package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
)

// CacheMiddleware caches GET responses in Redis. Keys embed the
// authenticated user's id, which is what lets write paths wipe one
// user's entries with a single pattern.
type CacheMiddleware struct {
	cache  *cache.RedisClient
	prefix string
	ttl    time.Duration
}

func NewCacheMiddleware(cache *cache.RedisClient, prefix string, ttl time.Duration) *CacheMiddleware {
	return &CacheMiddleware{
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
	}
}

// responseBuffer is a custom ResponseWriter that stores the response
type responseBuffer struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func newResponseBuffer(original gin.ResponseWriter) *responseBuffer {
	return &responseBuffer{
		ResponseWriter: original,
		body:           bytes.NewBufferString(""),
	}
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	r.ResponseWriter.Write(b)
	return r.body.Write(b)
}

func (r *responseBuffer) WriteString(s string) (int, error) {
	r.ResponseWriter.WriteString(s)
	return r.body.WriteString(s)
}

func (r *responseBuffer) WriteHeader(code int) {
	r.ResponseWriter.WriteHeader(code)
}

// CacheResponse caches the response of an endpoint with the default TTL.
func (m *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return m.cachePage("", m.ttl)
}

// CachePageWithTTL caches the response of an endpoint with a custom
// TTL. cacheType feeds the hit/miss metrics so route groups can be
// told apart.
func (m *CacheMiddleware) CachePageWithTTL(cacheType string, ttl time.Duration) gin.HandlerFunc {
	return m.cachePage(cacheType, ttl)
}

func (m *CacheMiddleware) cachePage(cacheType string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		key := m.generateCacheKey(c)

		// Try to get from cache
		if cached, err := m.cache.Get(c, key); err == nil {
			var response map[string]interface{}
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				m.cache.TrackCacheEvent(true, cacheType)
				c.JSON(http.StatusOK, response)
				c.Abort()
				return
			}
		}
		m.cache.TrackCacheEvent(false, cacheType)

		// Store original response writer
		writer := c.Writer
		buff := newResponseBuffer(writer)
		c.Writer = buff

		c.Next()

		// If response was successful, cache it
		if c.Writer.Status() == http.StatusOK {
			responseData := buff.body.String()
			if err := m.cache.Set(c, key, responseData, ttl); err != nil {
				log.Error("Failed to cache response", zap.Error(err))
			}
		}

		// Original writer already has the response due to our WriteHeader and Write implementations
		c.Writer = writer
	}
}

// generateCacheKey builds "<prefix>:<path segments>:<query>:<user id>".
// The full path keeps sibling routes like /api/habits and
// /api/habits/streaks from colliding; the trailing user id is what the
// invalidation pattern anchors on.
func (m *CacheMiddleware) generateCacheKey(c *gin.Context) string {
	parts := []string{m.prefix}

	pathParts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
	parts = append(parts, pathParts...)

	if len(c.Request.URL.RawQuery) > 0 {
		parts = append(parts, c.Request.URL.RawQuery)
	}

	if userID, ok := GetUserID(c); ok && userID != uuid.Nil {
		parts = append(parts, userID.String())
	}

	return strings.Join(parts, ":")
}
