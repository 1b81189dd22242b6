package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstock/internal/domain/ledger"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// stockEventRepository 库存流水仓储（只追加）
type stockEventRepository struct {
	db *gorm.DB
}

func NewStockEventRepository(db *gorm.DB) ledger.Repository {
	return &stockEventRepository{db: db}
}

func (r *stockEventRepository) Append(ctx context.Context, e *ledger.StockEvent) error {
	model := &StockEventModel{
		BookID:   e.BookID,
		Quantity: e.Quantity,
		Date:     e.Timestamp,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "写入库存流水失败")
	}

	e.ID = model.ID
	return nil
}

func (r *stockEventRepository) Latest(ctx context.Context, bookID uint) (*ledger.StockEvent, bool, error) {
	var model StockEventModel
	err := dbFrom(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("id DESC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(err, "查询库存流水失败")
	}
	return toStockEvent(&model), true, nil
}

func (r *stockEventRepository) ListByBook(ctx context.Context, bookID uint) ([]*ledger.StockEvent, error) {
	var models []StockEventModel
	err := dbFrom(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询库存流水失败")
	}

	events := make([]*ledger.StockEvent, 0, len(models))
	for i := range models {
		events = append(events, toStockEvent(&models[i]))
	}
	return events, nil
}

func toStockEvent(m *StockEventModel) *ledger.StockEvent {
	return &ledger.StockEvent{
		ID:        m.ID,
		BookID:    m.BookID,
		Quantity:  m.Quantity,
		Timestamp: m.Date,
	}
}
