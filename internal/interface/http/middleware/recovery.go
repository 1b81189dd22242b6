package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// Recovery 捕获handler中的panic，记录日志并返回500
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		l := log
		if v, ok := c.Get(response.LoggerKey); ok {
			if reqLog, ok := v.(*zap.Logger); ok {
				l = reqLog
			}
		}
		l.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		response.ErrorWithStatus(c, http.StatusInternalServerError, apperrors.ErrInternal.Message)
		c.Abort()
	})
}
