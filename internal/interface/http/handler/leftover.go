package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstock/internal/application/leftover"
	"github.com/xiebiao/bookstock/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// UploadLimit 批量导入文件大小上限（字节），<=0表示不限制
type UploadLimit int64

const uploadSuccessMessage = "Data successfully uploaded"

// LeftoverHandler 库存登记HTTP处理器
type LeftoverHandler struct {
	recordUseCase *leftover.RecordLeftoverUseCase
	rawUseCase    *leftover.RecordRawUseCase
	bulkUseCase   *leftover.BulkUploadUseCase
	uploadLimit   UploadLimit
}

func NewLeftoverHandler(
	recordUseCase *leftover.RecordLeftoverUseCase,
	rawUseCase *leftover.RecordRawUseCase,
	bulkUseCase *leftover.BulkUploadUseCase,
	uploadLimit UploadLimit,
) *LeftoverHandler {
	return &LeftoverHandler{
		recordUseCase: recordUseCase,
		rawUseCase:    rawUseCase,
		bulkUseCase:   bulkUseCase,
		uploadLimit:   uploadLimit,
	}
}

// Add 入库
// @Summary      按条码入库
// @Description  同条码多本图书时登记到ID最小的一本；date可选
// @Tags         库存
// @Accept       json
// @Produce      json
// @Param        request body dto.LeftoverRequest true "登记信息"
// @Success      201 {object} response.Key
// @Failure      404 {object} response.Message "条码不存在"
// @Failure      422 {object} response.Message "请求结构错误"
// @Router       /leftover/add [post]
func (h *LeftoverHandler) Add(c *gin.Context) {
	h.record(c, leftover.DirectionAdd)
}

// Remove 出库，数量取反后记录
// @Summary      按条码出库
// @Tags         库存
// @Accept       json
// @Produce      json
// @Param        request body dto.LeftoverRequest true "登记信息"
// @Success      201 {object} response.Key
// @Failure      404 {object} response.Message "条码不存在"
// @Failure      422 {object} response.Message "请求结构错误"
// @Router       /leftover/remove [post]
func (h *LeftoverHandler) Remove(c *gin.Context) {
	h.record(c, leftover.DirectionRemove)
}

func (h *LeftoverHandler) record(c *gin.Context, direction leftover.Direction) {
	var req dto.LeftoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	var date *time.Time
	if req.Date != "" {
		t, err := dto.ParseDateTime(req.Date)
		if err != nil {
			response.Error(c, apperrors.ErrInvalidParams.WithCause(err))
			return
		}
		date = &t
	}

	result, err := h.recordUseCase.Execute(c.Request.Context(), leftover.RecordRequest{
		Barcode:   *req.Barcode,
		Quantity:  *req.Quantity,
		Date:      date,
		Direction: direction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result.ID)
}

// Raw 按图书ID登记原始数量
// @Summary      按图书ID登记数量
// @Description  数量原样写入（负数表示出库）
// @Tags         库存
// @Accept       json
// @Produce      json
// @Param        request body dto.RawLeftoverRequest true "登记信息"
// @Success      201 {object} response.Key
// @Failure      404 {object} response.Message "图书不存在"
// @Failure      422 {object} response.Message "请求结构错误"
// @Router       /leftover [post]
func (h *LeftoverHandler) Raw(c *gin.Context) {
	var req dto.RawLeftoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	result, err := h.rawUseCase.Execute(c.Request.Context(), leftover.RecordRawRequest{
		BookID:   *req.BookID,
		Quantity: *req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result.ID)
}

// Bulk 批量导入
// @Summary      批量导入库存
// @Description  .xlsx：首个工作表，A列条码、B列数量，空条码行跳过
// @Description  .txt：每行 BRC<条码> 或 QNT<数量>，QNT与前一个BRC配对
// @Description  整个文件先校验，全部通过后逐条入账
// @Tags         库存
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "导入文件（.xlsx或.txt）"
// @Success      200 {object} response.Message
// @Failure      400 {object} response.Message "文件格式、行内容或数量错误（包含行号）"
// @Failure      404 {object} response.Message "条码不存在"
// @Failure      422 {object} response.Message "缺少file字段"
// @Router       /leftovers/bulk [post]
func (h *LeftoverHandler) Bulk(c *gin.Context) {
	if h.uploadLimit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.uploadLimit))
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperrors.New(apperrors.ErrCodeUploadFailed,
				fmt.Sprintf("File too large, limit is %d bytes", tooLarge.Limit)))
			return
		}
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeUploadFailed, err.Error()))
		return
	}
	defer file.Close()

	if _, err := h.bulkUseCase.Execute(c.Request.Context(), leftover.BulkUploadRequest{
		Filename: header.Filename,
		Content:  file,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.Message{Message: uploadSuccessMessage})
}
