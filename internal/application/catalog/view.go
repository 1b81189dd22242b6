package catalog

import (
	"context"

	"github.com/xiebiao/bookstock/internal/domain/author"
	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// AuthorInfo 图书详情中的作者信息
type AuthorInfo struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// BookView 图书详情（附带作者与当前数量）
type BookView struct {
	Key         uint       `json:"key"`
	Barcode     string     `json:"barcode"`
	Title       string     `json:"title"`
	PublishYear int        `json:"publish_year"`
	Author      AuthorInfo `json:"author"`
	Quantity    int        `json:"quantity"`
}

// viewBuilder 组装BookView，GetBook和SearchBooks共用
type viewBuilder struct {
	authorRepo author.Repository
	ledger     ledger.Service
}

func (v *viewBuilder) build(ctx context.Context, books []*book.Book) ([]BookView, error) {
	ids := make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.AuthorID)
	}

	authors, err := v.authorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]BookView, 0, len(books))
	for _, b := range books {
		a, ok := authors[b.AuthorID]
		if !ok {
			// 图书引用的作者必然存在，缺失说明数据被外部破坏
			return nil, apperrors.Wrapf(author.ErrAuthorNotFound, "图书%d的作者%d不存在", b.ID, b.AuthorID)
		}

		qty, err := v.ledger.CurrentQuantity(ctx, b.ID)
		if err != nil {
			return nil, err
		}

		views = append(views, BookView{
			Key:         b.ID,
			Barcode:     b.Barcode,
			Title:       b.Title,
			PublishYear: b.PublishYear,
			Author:      AuthorInfo{Name: a.Name, BirthDate: a.BirthDate},
			Quantity:    qty,
		})
	}
	return views, nil
}
