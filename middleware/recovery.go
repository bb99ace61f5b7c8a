package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Recovery turns a handler panic into a 500 instead of killing the
// process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithField("panic", r).Error(string(debug.Stack()))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
