package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "careconnect/database/repository/user"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates the bearer token, verifies that its hash is
// the account's current one (Redis cache first, Mongo fallback) and places
// the caller's identity in the request context as "userID" and "role".
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Try the auth cache first.
		if authCache := utils.AuthCacheClient; authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
			cancel()
			switch {
			case err == nil:
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			case err != redis.Nil:
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: verify against the stored token hash.
		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		utils.CacheAuthToken(userID, computedHash)

		c.Set("userID", userID)
		c.Set("role", usr.Role)
		c.Next()
	}
}
