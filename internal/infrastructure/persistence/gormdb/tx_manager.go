package gormdb

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键（私有类型，避免与其他包冲突）
type txKey struct{}

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB
// 3. 嵌套调用时GORM自动使用Savepoint
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction fn返回error时回滚，返回nil时提交
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    exists, err := bookRepo.ExistsByID(ctx, bookID)
//	    ...
//	    return eventRepo.Append(ctx, event)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom 从context获取事务DB，没有则使用默认DB
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
