package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userRepo "slotwise/database/repository/user"
	"slotwise/models"
	"slotwise/utils"
)

// authCachePrefix keys the Redis cache of authenticated accounts.
const authCachePrefix = "auth:user:"

// JWTAuthMiddleware validates the bearer token and loads the account behind
// it, caching the lookup in Redis for an hour. It sets "userID", "userEmail"
// and "businessID" on the Gin context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		user := lookupUser(users, userID)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userEmail", user.Email)
		c.Set("businessID", user.BusinessID)
		c.Next()
	}
}

// lookupUser fetches the account, going through the Redis cache first. Cache
// failures silently fall back to the database.
func lookupUser(users userRepo.UserRepository, userID string) *models.User {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := authCachePrefix + userID
	cache := utils.GetCacheClient()
	if cache != nil {
		if cached, err := cache.Get(ctx, cacheKey).Result(); err == nil {
			var u models.User
			if json.Unmarshal([]byte(cached), &u) == nil {
				_ = cache.Expire(ctx, cacheKey, time.Hour).Err()
				return &u
			}
		}
	}

	user, err := users.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Auth lookup failed", zap.String("userId", userID), zap.Error(err))
		return nil
	}
	if user == nil {
		return nil
	}

	if cache != nil {
		// PasswordHash is excluded by its json tag, so the cached copy
		// never holds credentials.
		if b, err := json.Marshal(user); err == nil {
			_ = cache.Set(ctx, cacheKey, b, time.Hour).Err()
		}
	}
	return user
}

// InvalidateUserCache drops the cached account after profile changes.
func InvalidateUserCache(userID string) {
	cache := utils.GetCacheClient()
	if cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = cache.Del(ctx, authCachePrefix+userID).Err()
}
