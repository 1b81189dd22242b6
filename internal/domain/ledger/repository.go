package ledger

import "context"

// Repository 流水仓储接口
type Repository interface {
	// Append 插入一条流水，成功后回填ID
	Append(ctx context.Context, event *StockEvent) error

	// Latest 返回最后插入（ID最大）的一条流水
	// 没有流水时found为false，不返回错误
	Latest(ctx context.Context, bookID uint) (event *StockEvent, found bool, err error)

	// ListByBook 按插入顺序（ID升序）返回图书的全部流水
	ListByBook(ctx context.Context, bookID uint) ([]*StockEvent, error)
}

// BookChecker 校验图书是否存在（由图书仓储实现）
type BookChecker interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// Transactor 事务边界（由持久化层的TxManager实现）
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuantityCache 当前数量缓存
// 缓存值带有产生它的流水ID，Set只在eventID不小于已缓存的ID时覆盖，
// 并发写入或回填的先后顺序不影响最终结果
type QuantityCache interface {
	Get(ctx context.Context, bookID uint) (quantity int, found bool, err error)
	Set(ctx context.Context, bookID, eventID uint, quantity int) error
}

// EventPublisher 流水登记事件发布
type EventPublisher interface {
	PublishRecorded(ctx context.Context, event *StockEvent) error
}

type nopCache struct{}

func (nopCache) Get(context.Context, uint) (int, bool, error) { return 0, false, nil }
func (nopCache) Set(context.Context, uint, uint, int) error   { return nil }

// NopCache 不缓存（未启用Redis时使用）
func NopCache() QuantityCache { return nopCache{} }

type nopPublisher struct{}

func (nopPublisher) PublishRecorded(context.Context, *StockEvent) error { return nil }

// NopPublisher 不发布事件（未启用消息队列时使用）
func NopPublisher() EventPublisher { return nopPublisher{} }
