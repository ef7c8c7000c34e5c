package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery recovers from panics and returns a 500 error. The panic value is
// echoed in "detail" only when development is true.
func Recovery(log *zap.Logger, development bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		GetLogger(c, log).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		body := gin.H{
			"success": false,
			"error":   "internal server error",
			"code":    "INTERNAL_ERROR",
		}
		if development {
			body["detail"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
