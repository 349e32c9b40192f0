package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tutorly/models"
	"tutorly/utils"
)

// IdentityKey is the gin context key the resolved caller identity is set
// under. Handlers downstream trust this identity completely.
const IdentityKey = "identity"

// JWTAuthUserMiddleware resolves the bearer token into a models.Identity and
// aborts unauthorized requests. Resolved identities are cached in Redis
// keyed by token hash so hot dashboards don't re-verify on every poll.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		cache := utils.GetAuthCacheClient()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if data, err := cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.Identity
			if err := json.Unmarshal([]byte(data), &cached); err == nil && cached.ID != "" {
				c.Set(IdentityKey, cached)
				c.Next()
				return
			}
		}

		identity, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || identity.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		if data, err := json.Marshal(identity); err == nil {
			cache.Set(ctx, cacheKey, data, utils.AuthCacheTTL)
		}

		c.Set(IdentityKey, *identity)
		c.Next()
	}
}

// IdentityFromContext retrieves the identity set by JWTAuthUserMiddleware.
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := val.(models.Identity)
	return identity, ok
}
