package leftover

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ingest"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/metrics"
	"github.com/xiebiao/bookstock/pkg/tracing"
)

const tracerName = "leftover"

// BulkUploadUseCase 批量导入用例
//
// 流程：
// 1. 完整解析文件（校验格式、行内容、条码存在性），任何错误都不写账本
// 2. 条码解析为图书ID（多本同条码取ID最小的一本）
// 3. 逐条写入账本，每条单独提交；中途失败时已写入的部分保留
type BulkUploadUseCase struct {
	bookService book.Service
	ledger      ledger.Service
	parser      *ingest.Parser
	logger      *zap.Logger
}

func NewBulkUploadUseCase(bookService book.Service, ledgerService ledger.Service, logger *zap.Logger) *BulkUploadUseCase {
	return &BulkUploadUseCase{
		bookService: bookService,
		ledger:      ledgerService,
		parser:      ingest.NewParser(bookService),
		logger:      logger,
	}
}

// BulkUploadRequest 批量导入请求DTO
type BulkUploadRequest struct {
	Filename string
	Content  io.Reader
}

// BulkUploadResponse 批量导入结果
type BulkUploadResponse struct {
	Parsed  int
	Applied int
}

func (uc *BulkUploadUseCase) Execute(ctx context.Context, req BulkUploadRequest) (*BulkUploadResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BulkUpload")
	defer span.End()
	span.SetAttributes(attribute.String("upload.filename", req.Filename))

	start := time.Now()
	format, _ := ingest.DetectFormat(req.Filename)
	formatLabel := string(format)
	if formatLabel == "" {
		formatLabel = "unsupported"
	}
	defer func() {
		metrics.ObserveHistogramVec(metrics.BulkUploadDuration, prometheus.Labels{"format": formatLabel}, time.Since(start).Seconds())
	}()

	log := uc.logger.With(
		zap.String("filename", req.Filename),
		zap.String("trace_id", tracing.ExtractTraceID(ctx)),
		zap.String("span_id", tracing.ExtractSpanID(ctx)),
	)

	// 1. 解析（完整校验）
	entries, err := uc.parser.Parse(ctx, req.Filename, req.Content)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.IncCounterVec(metrics.BulkUploadsTotal, prometheus.Labels{"format": formatLabel, "result": "parse_error"})
		log.Info("bulk upload rejected", zap.Error(err))
		return nil, uploadError(err)
	}
	span.SetAttributes(attribute.Int("upload.entries", len(entries)))

	// 2. 条码 → 图书ID
	resolved, err := uc.resolve(ctx, entries)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.IncCounterVec(metrics.BulkUploadsTotal, prometheus.Labels{"format": formatLabel, "result": "apply_error"})
		log.Warn("bulk upload barcode resolution failed", zap.Error(err))
		return nil, uploadError(err)
	}

	// 3. 逐条提交
	applied, err := uc.ledger.BulkAppend(ctx, resolved)
	metrics.AddCounter(metrics.BulkEntriesApplied, float64(applied))
	if err != nil {
		tracing.RecordError(span, err)
		metrics.IncCounterVec(metrics.BulkUploadsTotal, prometheus.Labels{"format": formatLabel, "result": "apply_error"})
		log.Warn("bulk upload partially applied",
			zap.Int("parsed", len(entries)),
			zap.Int("applied", applied),
			zap.Error(err),
		)
		return nil, uploadError(err)
	}

	metrics.IncCounterVec(metrics.BulkUploadsTotal, prometheus.Labels{"format": formatLabel, "result": "success"})
	log.Info("bulk upload applied", zap.Int("entries", applied))

	return &BulkUploadResponse{Parsed: len(entries), Applied: applied}, nil
}

func (uc *BulkUploadUseCase) resolve(ctx context.Context, entries []ingest.Entry) ([]ledger.Entry, error) {
	ids := make(map[string]uint)
	out := make([]ledger.Entry, 0, len(entries))

	for _, e := range entries {
		id, ok := ids[e.Barcode]
		if !ok {
			b, err := uc.bookService.ResolveBarcode(ctx, e.Barcode)
			if err != nil {
				return nil, err
			}
			id = b.ID
			ids[e.Barcode] = id
		}
		out = append(out, ledger.Entry{BookID: id, Quantity: e.Quantity})
	}
	return out, nil
}

// uploadError 处理文件过程中的意外错误返回400并带上错误文本，
// 业务错误（格式、行号、条码）保持原有错误码
func uploadError(err error) error {
	appErr := apperrors.GetAppError(err)
	if apperrors.HTTPStatus(appErr.Code) < 500 {
		return err
	}
	return apperrors.New(apperrors.ErrCodeUploadFailed, err.Error()).WithCause(err)
}
