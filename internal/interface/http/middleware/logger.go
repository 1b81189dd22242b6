package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookstock/pkg/response"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
//
// 1. 生成请求ID（客户端已带X-Request-ID时沿用）
// 2. 把带request_id字段的logger写入Context，response.Error记录5xx时使用
// 3. 请求结束后输出一条结构化访问日志，慢请求额外告警
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLog := log.With(zap.String(RequestIDKey, requestID))
		c.Set(response.LoggerKey, reqLog)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		reqLog.Log(levelFor(status), "http request", fields...)

		if latency > slowRequestThreshold {
			reqLog.Warn("slow request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
