package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/cache"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// OrderThrottle caps order submissions per client IP inside a fixed window,
// backed by a Redis counter so the limit holds across instances. A Redis
// failure lets the request through: the throttle is a spam guard, not an
// availability dependency.
type OrderThrottle struct {
	redis  *cache.RedisClient
	limit  int
	window time.Duration
}

// NewOrderThrottle constructs an OrderThrottle.
func NewOrderThrottle(redis *cache.RedisClient, limit int, window time.Duration) *OrderThrottle {
	return &OrderThrottle{redis: redis, limit: limit, window: window}
}

func (t *OrderThrottle) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "throttle:orders:" + c.ClientIP()
		n, err := t.redis.IncrWithTTL(c.Request.Context(), key, t.window)
		if err != nil {
			log.Warn().Err(err).Msg("order throttle check failed - allowing request")
			c.Next()
			return
		}
		if n > int64(t.limit) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many order submissions, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
