package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstock/internal/application/catalog"
	"github.com/xiebiao/bookstock/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createUseCase *catalog.CreateAuthorUseCase
	getUseCase    *catalog.GetAuthorUseCase
}

func NewAuthorHandler(createUseCase *catalog.CreateAuthorUseCase, getUseCase *catalog.GetAuthorUseCase) *AuthorHandler {
	return &AuthorHandler{createUseCase: createUseCase, getUseCase: getUseCase}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Key
// @Failure      422 {object} response.Message "请求结构错误"
// @Router       /author [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), catalog.CreateAuthorRequest{
		Name:      *req.Name,
		BirthDate: *req.BirthDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result.ID)
}

// Get 查询作者
// @Summary      查询作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} catalog.AuthorResponse
// @Failure      404 {object} response.Message "作者不存在"
// @Router       /author/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
