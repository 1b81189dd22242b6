package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstock/internal/application/catalog"
	"github.com/xiebiao/bookstock/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *catalog.CreateBookUseCase
	getUseCase    *catalog.GetBookUseCase
	searchUseCase *catalog.SearchBooksUseCase
}

func NewBookHandler(
	createUseCase *catalog.CreateBookUseCase,
	getUseCase *catalog.GetBookUseCase,
	searchUseCase *catalog.SearchBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		searchUseCase: searchUseCase,
	}
}

// Create 创建图书
// @Summary      创建图书
// @Description  author_id必须指向已存在的作者，barcode可以为null
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Key
// @Failure      422 {object} response.Message "请求结构错误或作者不存在"
// @Router       /book [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}
	if !req.Barcode.Present {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), catalog.CreateBookRequest{
		Barcode:     req.Barcode.Value,
		Title:       *req.Title,
		PublishYear: *req.PublishYear,
		AuthorID:    *req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result.ID)
}

// Get 图书详情
// @Summary      图书详情
// @Description  quantity为最近一次登记的数量
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} catalog.BookView
// @Failure      404 {object} response.Message "图书不存在"
// @Router       /book/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, view)
}

// Search 按条码搜索
// @Summary      按条码搜索图书
// @Description  没有匹配时返回 {"found":0,"items":[]}
// @Tags         图书
// @Produce      json
// @Param        barcode query string false "条码"
// @Success      200 {object} catalog.SearchBooksResponse
// @Router       /book [get]
func (h *BookHandler) Search(c *gin.Context) {
	var q dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	result, err := h.searchUseCase.Execute(c.Request.Context(), q.Barcode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
