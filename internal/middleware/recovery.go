// internal/middleware/recovery.go
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/utils"
)

// Recovery turns a panic into a 500. The panic value is only exposed in
// development.
func Recovery(exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithFields(logrus.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"panic":  r,
					"stack":  string(debug.Stack()),
				}).Error("Unhandled panic")

				message := ""
				if exposeDetail {
					message = fmt.Sprint(r)
				}
				utils.InternalErrorResponse(c, message)
				c.Abort()
			}
		}()
		c.Next()
	}
}
