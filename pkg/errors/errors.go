package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类型，并映射到HTTP状态码（见HTTPStatus）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMessage 复制一份错误并替换提示信息
// 用于在预定义错误上附加行号等上下文，原错误不会被修改
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithCause 复制一份错误并附加内部原因
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 批量导入错误（文件格式、行内容）
// - 404xx: 资源不存在
// - 422xx: 请求结构错误
// - 5xxxx: 服务端错误

const (
	// 系统级错误码
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 批量导入错误（40000-40099）
	ErrCodeUnsupportedFormat = 40001 // 不支持的文件格式
	ErrCodeMalformedLine     = 40002 // 行格式错误
	ErrCodeInvalidQuantity   = 40003 // 数量不是整数
	ErrCodeUnknownTag        = 40004 // 未知的行标签
	ErrCodeUnpairedQuantity  = 40005 // QNT之前没有BRC
	ErrCodeUploadFailed      = 40006 // 文件处理失败

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeUnknownBarcode = 40403 // 条码不存在

	// 参数错误（42200-42299）
	ErrCodeInvalidParams   = 42200 // 参数错误
	ErrCodeBindError       = 42201 // 参数绑定失败
	ErrCodeInvalidAuthorID = 42202 // 关联的作者不存在
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "Internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")
	ErrRedisError    = New(ErrCodeRedisError, "Cache error")

	ErrNotFound      = New(ErrCodeNotFound, "Entity not found")
	ErrInvalidParams = New(ErrCodeInvalidParams, "Wrong request structure")
	ErrBindError     = New(ErrCodeBindError, "Wrong request structure")
)

// HTTPStatus 错误码 → HTTP状态码
func HTTPStatus(code int) int {
	switch {
	case code >= 40000 && code < 40100:
		return http.StatusBadRequest
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 42200 && code < 42300:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
