package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/cache"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	signInMaxAttempts = 10
	signInWindow      = 15 * time.Minute
)

// SignInRateLimit throttles sign-in attempts per client IP on a Redis
// counter. Fails open when Redis is unavailable.
func SignInRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:signin:%s", c.ClientIP())

		attempts, err := cache.IncrementCounter(key, signInWindow)
		if err != nil {
			if !errors.Is(err, cache.ErrDisabled) {
				utils.Logger.Warn("ratelimit_unavailable", zap.Error(err))
			}
			c.Next()
			return
		}

		if attempts > signInMaxAttempts {
			utils.Logger.Warn("signin_rate_limited",
				zap.String("client_ip", c.ClientIP()),
				zap.Int64("attempts", attempts),
			)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many sign-in attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
