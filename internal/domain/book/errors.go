package book

import (
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Entity not found")

	// ErrUnknownBarcode 没有图书使用该条码
	ErrUnknownBarcode = apperrors.New(apperrors.ErrCodeUnknownBarcode, "Entity not found")

	// ErrEmptyTitle 书名为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "Wrong request structure")

	// ErrInvalidAuthor 引用的作者不存在
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidAuthorID, "Author does not exist")
)
