package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 查询不到时返回领域错误（ErrBookNotFound / ErrUnknownBarcode），而不是nil, nil
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ExistsByID 图书是否存在（库存流水写入前校验）
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// FindByBarcode 查询使用该条码的全部图书，按ID升序
	// 没有匹配时返回空切片
	FindByBarcode(ctx context.Context, barcode string) ([]*Book, error)

	// FirstByBarcode 返回ID最小的匹配图书（库存登记、批量导入按条码定位图书）
	FirstByBarcode(ctx context.Context, barcode string) (*Book, error)

	// ExistsByBarcode 条码是否被任意图书使用
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)
}
