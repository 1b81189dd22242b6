package dto

import (
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// LeftoverRequest 按条码登记入库/出库
// Date可选，支持 YYYY-MM-DD 或 YYYY-MM-DD HH:MM:SS，缺省为当前时间
type LeftoverRequest struct {
	Barcode  *string `json:"barcode" binding:"required" example:"4600000000017"`
	Quantity *int    `json:"quantity" binding:"required" example:"10"`
	Date     string  `json:"date,omitempty" example:"2024-01-15"`
}

// RawLeftoverRequest 按图书ID登记原始数量，数量可为负
type RawLeftoverRequest struct {
	BookID   *uint `json:"book_id" binding:"required" example:"1"`
	Quantity *int  `json:"quantity" binding:"required" example:"-3"`
}

// HistoryQuery GET /history 查询参数，三个参数都必填
type HistoryQuery struct {
	Start string `form:"start" binding:"required" example:"2024-01-01"`
	End   string `form:"end" binding:"required" example:"2024-02-01"`
	Book  *uint  `form:"book" binding:"required" example:"1"`
}

// ParseDate 解析日历日期，结果为本地时区零点
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseDateTime 解析日期或日期时间（本地时区）
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return ParseDate(s)
}
