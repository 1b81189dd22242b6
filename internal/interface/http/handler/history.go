package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstock/internal/application/leftover"
	"github.com/xiebiao/bookstock/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// HistoryHandler 库存历史HTTP处理器
type HistoryHandler struct {
	rangeUseCase *leftover.HistoryUseCase
	fullUseCase  *leftover.FullHistoryUseCase
}

func NewHistoryHandler(rangeUseCase *leftover.HistoryUseCase, fullUseCase *leftover.FullHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{rangeUseCase: rangeUseCase, fullUseCase: fullUseCase}
}

// Range 区间历史
// @Summary      区间库存历史
// @Description  start/end为日期（零点）；start_balance为start之后全部流水之和，end_balance为end之前全部流水之和
// @Description  响应为只含一个元素的数组
// @Tags         库存
// @Produce      json
// @Param        start query string true "开始日期 YYYY-MM-DD"
// @Param        end   query string true "结束日期 YYYY-MM-DD"
// @Param        book  query int    true "图书ID"
// @Success      200 {array}  leftover.HistoryResponse
// @Failure      404 {object} response.Message "图书不存在"
// @Failure      422 {object} response.Message "缺少参数或日期格式错误"
// @Router       /history [get]
func (h *HistoryHandler) Range(c *gin.Context) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	start, err := dto.ParseDate(q.Start)
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithCause(err))
		return
	}
	end, err := dto.ParseDate(q.End)
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithCause(err))
		return
	}

	result, err := h.rangeUseCase.Execute(c.Request.Context(), leftover.HistoryRequest{
		BookID: *q.Book,
		Start:  start,
		End:    end,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, []*leftover.HistoryResponse{result})
}

// Full 全部历史
// @Summary      图书全部库存流水
// @Description  按登记顺序返回
// @Tags         库存
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} leftover.FullHistoryResponse
// @Failure      404 {object} response.Message "图书不存在"
// @Router       /history/{id} [get]
func (h *HistoryHandler) Full(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.fullUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
