package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstock/internal/domain/author"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Name:      a.Name,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*author.Author, error) {
	result := make(map[uint]*author.Author, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []AuthorModel
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询作者失败")
	}

	for i := range models {
		result[models[i].ID] = toAuthorEntity(&models[i])
	}
	return result, nil
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:        m.ID,
		Name:      m.Name,
		BirthDate: m.BirthDate,
		CreatedAt: m.CreatedAt,
	}
}
