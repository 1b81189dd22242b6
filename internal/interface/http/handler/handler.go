// Package handler HTTP处理器
//
// Handler只负责HTTP相关的事情：解析请求、调用应用层用例、返回响应。
// 业务规则在domain层，编排在application层。
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
	"github.com/xiebiao/bookstock/pkg/response"
)

// parseID 解析路径参数中的ID，非数字按资源不存在处理
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, apperrors.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

// Ping 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Message
// @Router       /ping [get]
func Ping(c *gin.Context) {
	response.OK(c, response.Message{Message: "pong"})
}
