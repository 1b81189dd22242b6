package leftover

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	"github.com/xiebiao/bookstock/pkg/metrics"
)

// Direction 登记方向
type Direction string

const (
	DirectionAdd    Direction = "add"
	DirectionRemove Direction = "remove"
)

// RecordLeftoverUseCase 按条码登记入库/出库
// 出库时数量取反后写入账本
type RecordLeftoverUseCase struct {
	bookService book.Service
	ledger      ledger.Service
}

func NewRecordLeftoverUseCase(bookService book.Service, ledgerService ledger.Service) *RecordLeftoverUseCase {
	return &RecordLeftoverUseCase{bookService: bookService, ledger: ledgerService}
}

// RecordRequest 登记请求DTO
type RecordRequest struct {
	Barcode   string
	Quantity  int
	Date      *time.Time // 为空时使用当前时间
	Direction Direction
}

// RecordResponse 登记结果
type RecordResponse struct {
	ID uint
}

func (uc *RecordLeftoverUseCase) Execute(ctx context.Context, req RecordRequest) (*RecordResponse, error) {
	// 多本同条码时登记到ID最小的一本
	b, err := uc.bookService.ResolveBarcode(ctx, req.Barcode)
	if err != nil {
		return nil, err
	}

	qty := req.Quantity
	if req.Direction == DirectionRemove {
		qty = -qty
	}

	event, err := uc.ledger.Append(ctx, b.ID, qty, req.Date)
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.LeftoversRecordedTotal, prometheus.Labels{"direction": string(req.Direction)})
	return &RecordResponse{ID: event.ID}, nil
}

// RecordRawUseCase 按图书ID登记原始数量（不区分方向，数量原样写入）
type RecordRawUseCase struct {
	ledger ledger.Service
}

func NewRecordRawUseCase(ledgerService ledger.Service) *RecordRawUseCase {
	return &RecordRawUseCase{ledger: ledgerService}
}

// RecordRawRequest 原始登记请求DTO
type RecordRawRequest struct {
	BookID   uint
	Quantity int
}

func (uc *RecordRawUseCase) Execute(ctx context.Context, req RecordRawRequest) (*RecordResponse, error) {
	event, err := uc.ledger.Append(ctx, req.BookID, req.Quantity, nil)
	if err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.LeftoversRecordedTotal, prometheus.Labels{"direction": "raw"})
	return &RecordResponse{ID: event.ID}, nil
}
