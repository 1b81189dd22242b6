// Package logger 基于zap构建结构化日志
//
// 配置项与config.LogConfig一一对应：
//   - level: debug | info | warn | error
//   - format: console | json
//   - output: stdout | stderr | /path/to/file
//   - enable_caller: 是否记录调用位置
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	Level        string
	Format       string
	Output       string
	EnableCaller bool
}

// New 根据配置创建zap Logger
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(defaultString(opts.Level, "info")))
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	var cfg zap.Config
	switch defaultString(opts.Format, "console") {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("无效的日志格式: %s", opts.Format)
	}

	output := defaultString(opts.Output, "stdout")
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = !opts.EnableCaller
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// NewNop 不输出任何日志（测试使用）
func NewNop() *zap.Logger {
	return zap.NewNop()
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
