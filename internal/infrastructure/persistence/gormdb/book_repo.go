package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstock/internal/domain/book"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. gorm.ErrRecordNotFound转换为领域错误
type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Barcode:     b.Barcode,
		Title:       b.Title,
		PublishYear: b.PublishYear,
		AuthorID:    b.AuthorID,
		CreatedAt:   b.CreatedAt,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

func (r *bookRepository) FindByBarcode(ctx context.Context, barcode string) ([]*book.Book, error) {
	var models []BookModel
	err := dbFrom(ctx, r.db).
		Where("barcode = ?", barcode).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按条码查询图书失败")
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, nil
}

func (r *bookRepository) FirstByBarcode(ctx context.Context, barcode string) (*book.Book, error) {
	var model BookModel
	// First按主键升序，多本同条码时取ID最小的
	err := dbFrom(ctx, r.db).Where("barcode = ?", barcode).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrUnknownBarcode
		}
		return nil, apperrors.Wrap(err, "按条码查询图书失败")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("barcode = ?", barcode).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "按条码查询图书失败")
	}
	return count > 0, nil
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:          m.ID,
		Barcode:     m.Barcode,
		Title:       m.Title,
		PublishYear: m.PublishYear,
		AuthorID:    m.AuthorID,
		CreatedAt:   m.CreatedAt,
	}
}
