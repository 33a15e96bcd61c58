package middlewares

import (
	"net/http"
	"strings"

	"github.com/PatrickBizetto/delivery-api-patrick/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware accepts the token from the query string as well, since
// browser WebSocket clients cannot set an Authorization header.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("clientId", claims.ClientID)
		c.Set("restaurantId", claims.RestaurantID)

		c.Next()
	}
}
