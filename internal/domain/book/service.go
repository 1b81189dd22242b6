package book

import (
	"context"
	"strings"

	"github.com/xiebiao/bookstock/internal/domain/author"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// Service 图书领域服务接口
// 设计说明：
// 1. 领域服务封装跨聚合的业务规则（图书引用作者）
// 2. 不依赖具体的Repository实现
type Service interface {
	// CreateBook 创建图书
	// 业务规则：
	// - 书名不能为空
	// - AuthorID必须指向已存在的作者
	CreateBook(ctx context.Context, barcode, title string, publishYear int, authorID uint) (*Book, error)

	GetBook(ctx context.Context, id uint) (*Book, error)

	// SearchByBarcode 没有匹配时返回空切片而不是错误
	SearchByBarcode(ctx context.Context, barcode string) ([]*Book, error)

	// ResolveBarcode 条码 → 图书（多本同条码时取ID最小的一本）
	ResolveBarcode(ctx context.Context, barcode string) (*Book, error)

	// BarcodeExists 供批量导入解析时校验条码
	BarcodeExists(ctx context.Context, barcode string) (bool, error)
}

type service struct {
	repo       Repository
	authorRepo author.Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository, authorRepo author.Repository) Service {
	return &service{repo: repo, authorRepo: authorRepo}
}

func (s *service) CreateBook(ctx context.Context, barcode, title string, publishYear int, authorID uint) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	// 引用完整性：作者必须存在
	if _, err := s.authorRepo.FindByID(ctx, authorID); err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeAuthorNotFound {
			return nil, ErrInvalidAuthor
		}
		return nil, err
	}

	b := NewBook(barcode, title, publishYear, authorID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) SearchByBarcode(ctx context.Context, barcode string) ([]*Book, error) {
	books, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}

func (s *service) ResolveBarcode(ctx context.Context, barcode string) (*Book, error) {
	return s.repo.FirstByBarcode(ctx, barcode)
}

func (s *service) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	return s.repo.ExistsByBarcode(ctx, barcode)
}
