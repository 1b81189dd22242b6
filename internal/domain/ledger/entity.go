package ledger

import "time"

// StockEvent 库存流水（只追加，不修改、不删除）
// Quantity为有符号增量：正数入库，负数出库，允许为0
type StockEvent struct {
	ID        uint
	BookID    uint
	Quantity  int
	Timestamp time.Time
}

// NewStockEvent 创建流水，ts为nil时使用当前时间
func NewStockEvent(bookID uint, quantity int, ts *time.Time) *StockEvent {
	t := time.Now()
	if ts != nil {
		t = *ts
	}
	return &StockEvent{
		BookID:    bookID,
		Quantity:  quantity,
		Timestamp: t,
	}
}

// Entry 批量登记的一条记录（条码已解析为图书ID）
type Entry struct {
	BookID   uint
	Quantity int
}
