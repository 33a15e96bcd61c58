package utils

import "github.com/gin-gonic/gin"

// Helpers to read what the auth middleware stored in the gin context.

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if u, ok := v.(uint); ok {
			return u
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentClientID(c *gin.Context) *uint {
	if v, ok := c.Get("clientId"); ok {
		if p, ok := v.(*uint); ok {
			return p
		}
	}
	return nil
}

func CurrentRestaurantID(c *gin.Context) *uint {
	if v, ok := c.Get("restaurantId"); ok {
		if p, ok := v.(*uint); ok {
			return p
		}
	}
	return nil
}
