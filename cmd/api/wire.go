//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstock/internal/application/catalog"
	"github.com/xiebiao/bookstock/internal/application/leftover"
	"github.com/xiebiao/bookstock/internal/domain/author"
	"github.com/xiebiao/bookstock/internal/domain/book"
	"github.com/xiebiao/bookstock/internal/domain/ledger"
	"github.com/xiebiao/bookstock/internal/infrastructure/config"
	"github.com/xiebiao/bookstock/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstock/internal/interface/http/handler"
)

// infrastructureSet 基础设施层：数据库、缓存、消息
var infrastructureSet = wire.NewSet(
	provideDB,
	provideQuantityCache,
	provideEventPublisher,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	gormdb.NewAuthorRepository,
	gormdb.NewBookRepository,
	gormdb.NewStockEventRepository,
	gormdb.NewTxManager,
	wire.Bind(new(ledger.Transactor), new(*gormdb.TxManager)),
	provideBookChecker,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	author.NewService,
	book.NewService,
	ledger.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	catalog.NewCreateAuthorUseCase,
	catalog.NewGetAuthorUseCase,
	catalog.NewCreateBookUseCase,
	catalog.NewGetBookUseCase,
	catalog.NewSearchBooksUseCase,
	leftover.NewRecordLeftoverUseCase,
	leftover.NewRecordRawUseCase,
	leftover.NewBulkUploadUseCase,
	leftover.NewHistoryUseCase,
	leftover.NewFullHistoryUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	provideUploadLimit,
	provideRouterOptions,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewLeftoverHandler,
	handler.NewHistoryHandler,
	handler.NewRouter,
)

// InitializeApp 组装整个应用
// cleanup按创建的逆序释放数据库、Redis、RabbitMQ连接
func InitializeApp(cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
	)
	return nil, nil, nil
}
