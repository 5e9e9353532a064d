package api

import (
	"github.com/gin-gonic/gin"

	"jobtracker/internal/tracker"
)

// userIDFromContext reads the user id resolved by the auth middleware.
func userIDFromContext(c *gin.Context) (uint, bool) {
	value, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// requestMeta captures the requester attributes recorded on audit entries.
func requestMeta(c *gin.Context) tracker.RequestMeta {
	return tracker.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
