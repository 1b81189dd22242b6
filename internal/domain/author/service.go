package author

import (
	"context"
	"strings"
)

// Service 作者领域服务
type Service interface {
	CreateAuthor(ctx context.Context, name, birthDate string) (*Author, error)
	GetAuthor(ctx context.Context, id uint) (*Author, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
// 业务规则：姓名不能为空白
func (s *service) CreateAuthor(ctx context.Context, name, birthDate string) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	a := NewAuthor(name, birthDate)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}
