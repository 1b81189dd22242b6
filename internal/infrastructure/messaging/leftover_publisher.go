package messaging

import (
	"context"
	"time"

	"github.com/xiebiao/bookstock/internal/domain/ledger"
)

// RoutingKeyLeftoverRecorded 库存流水登记事件
const RoutingKeyLeftoverRecorded = "leftover.recorded"

// LeftoverRecorded 事件消息体
type LeftoverRecorded struct {
	EventID  uint      `json:"event_id"`
	BookID   uint      `json:"book_id"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
}

// Publisher pkg/mq.Publisher满足此接口
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// LeftoverPublisher 把账本事件转换为消息发布
type LeftoverPublisher struct {
	pub Publisher
}

func NewLeftoverPublisher(pub Publisher) *LeftoverPublisher {
	return &LeftoverPublisher{pub: pub}
}

var _ ledger.EventPublisher = (*LeftoverPublisher)(nil)

func (p *LeftoverPublisher) PublishRecorded(ctx context.Context, e *ledger.StockEvent) error {
	return p.pub.Publish(ctx, RoutingKeyLeftoverRecorded, LeftoverRecorded{
		EventID:  e.ID,
		BookID:   e.BookID,
		Quantity: e.Quantity,
		Date:     e.Timestamp,
	})
}
