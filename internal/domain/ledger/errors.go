package ledger

import (
	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// ErrUnknownBook 流水引用的图书不存在
var ErrUnknownBook = apperrors.New(apperrors.ErrCodeBookNotFound, "Entity not found")
