package ledger

import (
	"sort"
	"time"
)

// Summary 区间汇总
type Summary struct {
	// StartBalance 所有 timestamp >= start 的流水之和（没有上界）
	StartBalance int
	// EndBalance 所有 timestamp <= end 的流水之和
	EndBalance int
	// Entries 落在 [start, end] 内的流水，按时间倒序，同一时间按ID倒序
	Entries []*StockEvent
}

// Summarize 基于图书的全部流水计算区间汇总
// 两个余额都扫描全量流水，而不只是区间内的部分
func Summarize(events []*StockEvent, start, end time.Time) Summary {
	s := Summary{Entries: []*StockEvent{}}

	for _, e := range events {
		if !e.Timestamp.Before(start) {
			s.StartBalance += e.Quantity
		}
		if !e.Timestamp.After(end) {
			s.EndBalance += e.Quantity
		}
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			s.Entries = append(s.Entries, e)
		}
	}

	sort.SliceStable(s.Entries, func(i, j int) bool {
		a, b := s.Entries[i], s.Entries[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	})

	return s
}

// Total 全部流水之和
func Total(events []*StockEvent) int {
	total := 0
	for _, e := range events {
		total += e.Quantity
	}
	return total
}
