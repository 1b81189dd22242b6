package author

import "context"

// Repository 作者仓储接口（domain层定义，infrastructure层实现）
type Repository interface {
	Create(ctx context.Context, author *Author) error

	// FindByID 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs 批量查询，用于按条码搜索时组装作者信息
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Author, error)
}
