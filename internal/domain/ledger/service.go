package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Service 库存账本领域服务
type Service interface {
	// Append 追加一条流水，ts为nil时使用当前时间
	// 图书不存在时返回ErrUnknownBook
	Append(ctx context.Context, bookID uint, quantity int, ts *time.Time) (*StockEvent, error)

	// CurrentQuantity 展示用的当前数量：最后插入的流水的Quantity原值，没有流水时为0
	// 注意：不是累加和
	CurrentQuantity(ctx context.Context, bookID uint) (int, error)

	// RangeSummary 区间汇总，见Summarize
	RangeSummary(ctx context.Context, bookID uint, start, end time.Time) (Summary, error)

	// History 按插入顺序返回全部流水
	History(ctx context.Context, bookID uint) ([]*StockEvent, error)

	// BulkAppend 逐条追加，每条单独提交
	// 中途失败时已写入的流水保留，返回已写入条数和错误
	BulkAppend(ctx context.Context, entries []Entry) (int, error)
}

type service struct {
	repo      Repository
	books     BookChecker
	tx        Transactor
	cache     QuantityCache
	publisher EventPublisher
	logger    *zap.Logger
}

// NewService 创建账本服务
// cache/publisher为nil时使用空实现
func NewService(repo Repository, books BookChecker, tx Transactor, cache QuantityCache, publisher EventPublisher, logger *zap.Logger) Service {
	if cache == nil {
		cache = NopCache()
	}
	if publisher == nil {
		publisher = NopPublisher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:      repo,
		books:     books,
		tx:        tx,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *service) Append(ctx context.Context, bookID uint, quantity int, ts *time.Time) (*StockEvent, error) {
	event := NewStockEvent(bookID, quantity, ts)

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		exists, err := s.books.ExistsByID(ctx, bookID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUnknownBook
		}
		return s.repo.Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.afterAppend(ctx, event)
	return event, nil
}

// afterAppend 提交后的副作用：刷新缓存、发布事件
// 二者失败都不影响已提交的流水，只记录日志
func (s *service) afterAppend(ctx context.Context, event *StockEvent) {
	if err := s.cache.Set(ctx, event.BookID, event.ID, event.Quantity); err != nil {
		s.logger.Warn("quantity cache update failed",
			zap.Uint("book_id", event.BookID),
			zap.Error(err),
		)
	}
	if err := s.publisher.PublishRecorded(ctx, event); err != nil {
		s.logger.Warn("publish leftover event failed",
			zap.Uint("event_id", event.ID),
			zap.Error(err),
		)
	}
}

func (s *service) CurrentQuantity(ctx context.Context, bookID uint) (int, error) {
	if q, found, err := s.cache.Get(ctx, bookID); err != nil {
		s.logger.Debug("quantity cache read failed", zap.Uint("book_id", bookID), zap.Error(err))
	} else if found {
		return q, nil
	}

	latest, found, err := s.repo.Latest(ctx, bookID)
	if err != nil {
		return 0, err
	}

	// 没有流水时以ID 0回填，之后任何流水都能覆盖
	var (
		quantity int
		eventID  uint
	)
	if found {
		quantity, eventID = latest.Quantity, latest.ID
	}

	if err := s.cache.Set(ctx, bookID, eventID, quantity); err != nil {
		s.logger.Debug("quantity cache fill failed", zap.Uint("book_id", bookID), zap.Error(err))
	}
	return quantity, nil
}

func (s *service) RangeSummary(ctx context.Context, bookID uint, start, end time.Time) (Summary, error) {
	events, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(events, start, end), nil
}

func (s *service) History(ctx context.Context, bookID uint) ([]*StockEvent, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *service) BulkAppend(ctx context.Context, entries []Entry) (int, error) {
	applied := 0
	for _, e := range entries {
		if _, err := s.Append(ctx, e.BookID, e.Quantity, nil); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}
