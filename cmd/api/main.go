package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/xiebiao/bookstock/docs"
	"github.com/xiebiao/bookstock/internal/infrastructure/config"
	"github.com/xiebiao/bookstock/pkg/logger"
	"github.com/xiebiao/bookstock/pkg/metrics"
	"github.com/xiebiao/bookstock/pkg/tracing"
)

// @title        Bookstock API
// @version      1.0
// @description  图书目录与库存流水服务：作者、图书、入库/出库登记、批量导入、库存历史
// @BasePath     /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志
	zlog, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	zlog.Info("config loaded",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("mq", cfg.MQ.Enabled),
	)

	// 3. 可观测性
	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(context.Background(), cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			zlog.Fatal("初始化Tracer失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				zlog.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	// 4. 依赖注入
	engine, cleanup, err := InitializeApp(cfg, zlog)
	if err != nil {
		zlog.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	// 5. 启动服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 6. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("服务关闭超时", zap.Error(err))
	}
}
