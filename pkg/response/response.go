package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// Message 仅包含提示信息的响应体
// 错误响应与/ping、批量导入成功响应共用此结构
type Message struct {
	Message string `json:"message"`
}

// Key 创建类接口的响应体，返回新记录的主键
type Key struct {
	Key uint `json:"key"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应，返回新记录ID
func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, Key{Key: id})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	view, err := uc.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	// 5xx只返回通用提示，内部错误写日志
	if status >= http.StatusInternalServerError {
		logFromContext(c).Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
		c.JSON(status, Message{Message: apperrors.ErrInternal.Message})
		return
	}

	c.JSON(status, Message{Message: appErr.Message})
}

// ErrorWithStatus 自定义状态码和消息
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Message{Message: message})
}

// LoggerKey 访问日志中间件写入gin.Context的logger键
const LoggerKey = "logger"

func logFromContext(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}
