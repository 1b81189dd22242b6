package main

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	"github.com/xiebiao/bookstock/internal/infrastructure/config"
	"github.com/xiebiao/bookstock/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstock/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstock/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstock/internal/interface/http/handler"
	"github.com/xiebiao/bookstock/pkg/mq"
)

// 以下Provider需要从Config提取参数或处理可选依赖，Wire无法自动推导

// provideDB 创建数据库连接，cleanup中关闭连接池
func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := gormdb.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideBookChecker 账本只需要图书仓储的ExistsByID
func provideBookChecker(repo book.Repository) ledger.BookChecker {
	return repo
}

// provideQuantityCache Redis未启用或连接失败时退化为不缓存
func provideQuantityCache(cfg *config.Config, log *zap.Logger) (ledger.QuantityCache, func(), error) {
	if !cfg.Redis.Enabled {
		return ledger.NopCache(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg, log)
	if err != nil {
		log.Warn("redis unavailable, quantity cache disabled", zap.Error(err))
		return ledger.NopCache(), func() {}, nil
	}

	return redis.NewQuantityCache(client, cfg.Redis.QuantityTTL, log), func() { client.Close() }, nil
}

// provideEventPublisher 启用消息队列时连接失败直接报错
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (ledger.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return ledger.NopPublisher(), func() {}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, log)
	if err != nil {
		return nil, nil, err
	}
	return messaging.NewLeftoverPublisher(pub), func() { pub.Close() }, nil
}

func provideUploadLimit(cfg *config.Config) handler.UploadLimit {
	return handler.UploadLimit(cfg.Upload.MaxBytes())
}

func provideRouterOptions(cfg *config.Config) handler.RouterOptions {
	return handler.RouterOptions{
		Mode:          cfg.Server.Mode,
		EnableSwagger: cfg.Server.EnableSwagger,
		EnableMetrics: cfg.Server.EnableMetrics,
	}
}
