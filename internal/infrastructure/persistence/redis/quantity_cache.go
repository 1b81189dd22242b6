package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstock/internal/domain/ledger"
	"github.com/xiebiao/bookstock/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/metrics"
)

// QuantityCache 图书当前数量缓存
// 设计说明：
// 1. Key格式：leftover:quantity:{book_id}，值为"{event_id}:{quantity}"
// 2. 写入流水后更新，查询时读穿（miss后由账本服务回填）
// 3. 更新通过Lua脚本比较event_id，旧流水不会覆盖新流水
// 4. 所有调用经过熔断器：Redis不可用时快速失败，调用方回源数据库
type QuantityCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewQuantityCache 创建数量缓存
func NewQuantityCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *QuantityCache {
	if logger == nil {
		logger = zap.NewNop()
	}

	breaker := circuitbreaker.New("redis-quantity-cache", circuitbreaker.Config{
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: shouldTrip,
		// 缓存未命中不算失败
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		logger.Warn("circuit breaker state changed",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	})

	return &QuantityCache{client: client, ttl: ttl, breaker: breaker}
}

// shouldTrip 连续失败5次，或统计窗口内请求数≥20且失败率≥50%
func shouldTrip(counts circuitbreaker.Counts) bool {
	if counts.ConsecutiveFailures >= 5 {
		return true
	}
	return counts.Requests >= 20 && counts.FailureRate() >= 0.5
}

var _ ledger.QuantityCache = (*QuantityCache)(nil)

// setIfNewer KEYS[1]=key ARGV[1]=event_id ARGV[2]=quantity ARGV[3]=ttl毫秒（0表示不过期）
// 已缓存的event_id更大时不写入，返回0
var setIfNewer = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	local sep = string.find(cur, ':', 1, true)
	local cached = sep and tonumber(string.sub(cur, 1, sep - 1))
	if cached and cached > tonumber(ARGV[1]) then
		return 0
	end
end
local value = ARGV[1] .. ':' .. ARGV[2]
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], value, 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], value)
end
return 1
`)

func quantityKey(bookID uint) string {
	return fmt.Sprintf("leftover:quantity:%d", bookID)
}

// Get 读取缓存，found=false表示未命中
func (c *QuantityCache) Get(ctx context.Context, bookID uint) (int, bool, error) {
	var raw string
	err := c.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		var err error
		raw, err = c.client.Get(ctx, quantityKey(bookID)).Result()
		return err
	})

	switch {
	case errors.Is(err, redis.Nil):
		metrics.IncCounterVec(metrics.QuantityCacheRequests, prometheus.Labels{"result": "miss"})
		return 0, false, nil
	case err != nil:
		metrics.IncCounterVec(metrics.QuantityCacheRequests, prometheus.Labels{"result": "error"})
		return 0, false, apperrors.New(apperrors.ErrCodeRedisError, "读取数量缓存失败").WithCause(err)
	}

	q, err := decodeQuantity(raw)
	if err != nil {
		// 脏数据按未命中处理，回源后会被覆盖
		metrics.IncCounterVec(metrics.QuantityCacheRequests, prometheus.Labels{"result": "miss"})
		return 0, false, nil
	}

	metrics.IncCounterVec(metrics.QuantityCacheRequests, prometheus.Labels{"result": "hit"})
	return q, true, nil
}

// Set 按event_id条件写入，旧值被保留时不返回错误
func (c *QuantityCache) Set(ctx context.Context, bookID, eventID uint, quantity int) error {
	err := c.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		return setIfNewer.Run(ctx, c.client, []string{quantityKey(bookID)},
			eventID, quantity, c.ttl.Milliseconds()).Err()
	})
	if err != nil {
		return apperrors.New(apperrors.ErrCodeRedisError, "写入数量缓存失败").WithCause(err)
	}
	return nil
}

func decodeQuantity(raw string) (int, error) {
	_, qty, found := strings.Cut(raw, ":")
	if !found {
		return 0, fmt.Errorf("缓存值格式错误: %q", raw)
	}
	return strconv.Atoi(qty)
}
