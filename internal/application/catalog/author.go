package catalog

import (
	"context"

	"github.com/xiebiao/bookstock/internal/domain/author"
)

// CreateAuthorUseCase 创建作者用例
type CreateAuthorUseCase struct {
	authorService author.Service
}

func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	Name      string
	BirthDate string // YYYY-MM-DD，原样保存
}

// CreatedResponse 创建类用例的响应，只返回新记录ID
type CreatedResponse struct {
	ID uint
}

func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*CreatedResponse, error) {
	a, err := uc.authorService.CreateAuthor(ctx, req.Name, req.BirthDate)
	if err != nil {
		return nil, err
	}
	return &CreatedResponse{ID: a.ID}, nil
}

// GetAuthorUseCase 查询作者用例
type GetAuthorUseCase struct {
	authorService author.Service
}

func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// AuthorResponse 作者响应DTO
type AuthorResponse struct {
	Key  uint   `json:"key"`
	Name string `json:"name"`
}

func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.authorService.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AuthorResponse{Key: a.ID, Name: a.Name}, nil
}
