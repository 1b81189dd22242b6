// Package metrics Prometheus指标定义
//
// 指标分组：
//   - HTTP请求：总数、耗时、进行中数量
//   - 库存流水：单条登记、批量导入、导入耗时
//   - 缓存：数量缓存命中/未命中
//   - 熔断器、消息发布
//
// 所有指标通过promauto注册到默认Registry，/metrics路由由promhttp暴露。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTP
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 库存流水
	LeftoversRecordedTotal *prometheus.CounterVec // 标签：direction（add/remove/raw）
	BulkUploadsTotal       *prometheus.CounterVec // 标签：format, result
	BulkEntriesApplied     prometheus.Counter
	BulkUploadDuration     *prometheus.HistogramVec // 标签：format

	// 缓存
	QuantityCacheRequests *prometheus.CounterVec // 标签：result（hit/miss/error）

	// 熔断器
	CircuitBreakerState    *prometheus.GaugeVec
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标（重复调用安全）
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	LeftoversRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leftovers_recorded_total",
			Help: "单条登记的库存流水数",
		},
		[]string{"direction"},
	)

	BulkUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leftover_bulk_uploads_total",
			Help: "批量导入次数",
		},
		[]string{"format", "result"}, // result: success/parse_error/apply_error
	)

	BulkEntriesApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leftover_bulk_entries_applied_total",
			Help: "批量导入写入的流水条数",
		},
	)

	BulkUploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leftover_bulk_upload_duration_seconds",
			Help:    "批量导入耗时（秒）",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"format"},
	)

	QuantityCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantity_cache_requests_total",
			Help: "库存数量缓存访问次数",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"}, // result: success/failure/rejected
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// =========================================
// 辅助函数
// 指标未初始化时（如单元测试未调用InitMetrics）直接忽略
// =========================================

func AddCounter(counter prometheus.Counter, v float64) {
	if counter != nil {
		counter.Add(v)
	}
}

func IncCounterVec(counter *prometheus.CounterVec, labels prometheus.Labels) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

func SetGaugeVec(gauge *prometheus.GaugeVec, labels prometheus.Labels, value float64) {
	if gauge != nil {
		gauge.With(labels).Set(value)
	}
}

func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels prometheus.Labels, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}
