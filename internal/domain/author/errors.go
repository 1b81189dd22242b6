package author

import (
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Entity not found")

	// ErrEmptyName 作者姓名为空
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidParams, "Wrong request structure")
)
