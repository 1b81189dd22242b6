package book

import (
	"time"
)

// Book 图书实体
// 设计说明：
// 1. Barcode可以为空，也不唯一（按条码搜索返回的是集合）
// 2. AuthorID必须引用已存在的作者，由Service在创建时校验
// 3. 创建后不可修改
type Book struct {
	ID          uint
	Barcode     string
	Title       string
	PublishYear int
	AuthorID    uint
	CreatedAt   time.Time
}

// NewBook 创建新图书（工厂方法）
func NewBook(barcode, title string, publishYear int, authorID uint) *Book {
	return &Book{
		Barcode:     barcode,
		Title:       title,
		PublishYear: publishYear,
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
	}
}
