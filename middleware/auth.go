package middleware

import (
	"errors"
	"strings"

	"github.com/Lasya-02/Mama-Sync/services"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the bearer token, verifies it, and stores the
// subject's user id in the context. Expired and invalid tokens get the
// same client-visible 401 body; the sub-reason only feeds metrics.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "missing_token")
			utils.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				utils.TrackAuthAttempt("failure", "token_expired")
			} else {
				utils.TrackAuthAttempt("failure", "token_invalid")
			}
			utils.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
