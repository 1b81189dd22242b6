package catalog

import (
	"context"

	"github.com/xiebiao/bookstock/internal/domain/author"
	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
)

// CreateBookUseCase 创建图书用例
// 业务规则（书名非空、作者存在）由领域服务校验
type CreateBookUseCase struct {
	bookService book.Service
}

func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
	Barcode     string
	Title       string
	PublishYear int
	AuthorID    uint
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*CreatedResponse, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Barcode, req.Title, req.PublishYear, req.AuthorID)
	if err != nil {
		return nil, err
	}
	return &CreatedResponse{ID: b.ID}, nil
}

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
	views       *viewBuilder
}

func NewGetBookUseCase(bookService book.Service, authorRepo author.Repository, ledgerService ledger.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		views:       &viewBuilder{authorRepo: authorRepo, ledger: ledgerService},
	}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookView, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := uc.views.build(ctx, []*book.Book{b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// SearchBooksUseCase 按条码搜索用例
type SearchBooksUseCase struct {
	bookService book.Service
	views       *viewBuilder
}

func NewSearchBooksUseCase(bookService book.Service, authorRepo author.Repository, ledgerService ledger.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
		views:       &viewBuilder{authorRepo: authorRepo, ledger: ledgerService},
	}
}

// SearchBooksResponse 搜索结果，没有匹配时Found=0且Items为空数组
type SearchBooksResponse struct {
	Found int        `json:"found"`
	Items []BookView `json:"items"`
}

func (uc *SearchBooksUseCase) Execute(ctx context.Context, barcode string) (*SearchBooksResponse, error) {
	books, err := uc.bookService.SearchByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	items, err := uc.views.build(ctx, books)
	if err != nil {
		return nil, err
	}
	return &SearchBooksResponse{Found: len(items), Items: items}, nil
}
