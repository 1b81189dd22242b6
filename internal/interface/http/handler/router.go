package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/bookstock/internal/interface/http/middleware"
)

// RouterOptions 路由开关
type RouterOptions struct {
	Mode          string // debug | release | test
	EnableSwagger bool
	EnableMetrics bool
}

// NewRouter 创建Gin引擎并注册全部路由
func NewRouter(
	opts RouterOptions,
	log *zap.Logger,
	authorHandler *AuthorHandler,
	bookHandler *BookHandler,
	leftoverHandler *LeftoverHandler,
	historyHandler *HistoryHandler,
) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logger(log))
	if opts.EnableMetrics {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// 访问 /swagger/index.html 查看API文档
	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/ping", Ping)

	r.POST("/author", authorHandler.Create)
	r.GET("/author/:id", authorHandler.Get)

	r.POST("/book", bookHandler.Create)
	r.GET("/book", bookHandler.Search)
	r.GET("/book/:id", bookHandler.Get)

	r.POST("/leftover/add", leftoverHandler.Add)
	r.POST("/leftover/remove", leftoverHandler.Remove)
	r.POST("/leftover", leftoverHandler.Raw)
	r.POST("/leftovers/bulk", leftoverHandler.Bulk)

	r.GET("/history", historyHandler.Range)
	r.GET("/history/:id", historyHandler.Full)

	return r
}
