package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/bookstock/pkg/metrics"
)

// Metrics HTTP请求指标中间件
// path标签使用路由模板（/book/:id），未匹配的路由统一记为unmatched，避免标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		start := time.Now()

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, prometheus.Labels{
			"method": method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, prometheus.Labels{
			"method": method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
