package ingest

import (
	"fmt"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// Kind 导入错误类型
type Kind int

const (
	KindUnsupportedFormat Kind = iota + 1
	KindMalformedLine
	KindInvalidQuantity
	KindUnknownBarcode
	KindUnknownTag
	KindUnpairedQuantity
)

// 导入错误（HTTP层按错误码映射状态码：条码不存在404，其余400）
var (
	ErrUnsupportedFormat = apperrors.New(apperrors.ErrCodeUnsupportedFormat, "Unsupported file format")
	ErrMalformedLine     = apperrors.New(apperrors.ErrCodeMalformedLine, "Malformed line")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidQuantity, "Invalid quantity")
	ErrUnknownBarcode    = apperrors.New(apperrors.ErrCodeUnknownBarcode, "Unknown barcode")
	ErrUnknownTag        = apperrors.New(apperrors.ErrCodeUnknownTag, "Unknown tag")
	ErrUnpairedQuantity  = apperrors.New(apperrors.ErrCodeUnpairedQuantity, "Quantity without preceding barcode")
)

func (k Kind) sentinel() *apperrors.AppError {
	switch k {
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindMalformedLine:
		return ErrMalformedLine
	case KindInvalidQuantity:
		return ErrInvalidQuantity
	case KindUnknownBarcode:
		return ErrUnknownBarcode
	case KindUnknownTag:
		return ErrUnknownTag
	case KindUnpairedQuantity:
		return ErrUnpairedQuantity
	default:
		return apperrors.ErrInternal
	}
}

// Error 带位置的导入错误
// Line为1开始的物理行号；表格文件称row，文本文件称line
type Error struct {
	Kind   Kind
	Line   int
	Format Format
}

func (e *Error) Error() string {
	base := e.Kind.sentinel().Message
	if e.Line == 0 {
		return base
	}
	unit := "line"
	if e.Format == FormatXLSX {
		unit = "row"
	}
	return fmt.Sprintf("%s in %s %d", base, unit, e.Line)
}

// Unwrap 返回带行号提示的AppError，HTTP层据此生成响应
func (e *Error) Unwrap() error {
	return e.Kind.sentinel().WithMessage(e.Error())
}

// Is 与预定义错误比较：errors.Is(err, ingest.ErrUnknownBarcode)
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newError(kind Kind, format Format, line int) *Error {
	return &Error{Kind: kind, Line: line, Format: format}
}
