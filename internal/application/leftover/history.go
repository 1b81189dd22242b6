package leftover

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	"github.com/xiebiao/bookstock/pkg/tracing"
)

// DateTimeLayout 历史记录中的时间格式
const DateTimeLayout = "2006-01-02 15:04:05"

// HistoryEntry 一条历史流水
type HistoryEntry struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// HistoryBook 历史查询中的图书信息
type HistoryBook struct {
	Key     uint   `json:"key"`
	Title   string `json:"title"`
	Barcode string `json:"barcode"`
}

// HistoryUseCase 区间历史查询
type HistoryUseCase struct {
	bookService book.Service
	ledger      ledger.Service
	location    *time.Location
}

func NewHistoryUseCase(bookService book.Service, ledgerService ledger.Service) *HistoryUseCase {
	return &HistoryUseCase{bookService: bookService, ledger: ledgerService, location: time.Local}
}

// HistoryRequest 区间查询请求，Start/End已解析为零点
type HistoryRequest struct {
	BookID uint
	Start  time.Time
	End    time.Time
}

// HistoryResponse 区间汇总
// StartBalance为 >= start 的全部流水之和（没有上界），EndBalance为 <= end 的全部流水之和
type HistoryResponse struct {
	Book         HistoryBook    `json:"book"`
	StartBalance int            `json:"start_balance"`
	EndBalance   int            `json:"end_balance"`
	History      []HistoryEntry `json:"history"`
}

func (uc *HistoryUseCase) Execute(ctx context.Context, req HistoryRequest) (*HistoryResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "History")
	defer span.End()
	span.SetAttributes(attribute.Int("book.id", int(req.BookID)))

	b, err := uc.bookService.GetBook(ctx, req.BookID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	summary, err := uc.ledger.RangeSummary(ctx, b.ID, req.Start, req.End)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	return &HistoryResponse{
		Book:         HistoryBook{Key: b.ID, Title: b.Title, Barcode: b.Barcode},
		StartBalance: summary.StartBalance,
		EndBalance:   summary.EndBalance,
		History:      toHistoryEntries(summary.Entries, uc.location),
	}, nil
}

// FullHistoryUseCase 图书全部流水（按登记顺序）
type FullHistoryUseCase struct {
	bookService book.Service
	ledger      ledger.Service
	location    *time.Location
}

func NewFullHistoryUseCase(bookService book.Service, ledgerService ledger.Service) *FullHistoryUseCase {
	return &FullHistoryUseCase{bookService: bookService, ledger: ledgerService, location: time.Local}
}

// FullHistoryBook 全量历史中的图书信息
type FullHistoryBook struct {
	Key   uint   `json:"key"`
	Title string `json:"title"`
}

// FullHistoryResponse 全量历史
type FullHistoryResponse struct {
	Book    FullHistoryBook `json:"book"`
	History []HistoryEntry  `json:"history"`
}

func (uc *FullHistoryUseCase) Execute(ctx context.Context, bookID uint) (*FullHistoryResponse, error) {
	b, err := uc.bookService.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	events, err := uc.ledger.History(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &FullHistoryResponse{
		Book:    FullHistoryBook{Key: b.ID, Title: b.Title},
		History: toHistoryEntries(events, uc.location),
	}, nil
}

func toHistoryEntries(events []*ledger.StockEvent, loc *time.Location) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(events))
	for _, e := range events {
		entries = append(entries, HistoryEntry{
			Date:     e.Timestamp.In(loc).Format(DateTimeLayout),
			Quantity: e.Quantity,
		})
	}
	return entries
}
