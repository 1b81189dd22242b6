package gormdb

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstock/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. driver=mysql 用于生产环境，driver=sqlite 用于本地开发与测试
// 2. 配置连接池参数（sqlite只允许一个连接，避免:memory:库在多个连接间不共享）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if log != nil {
		log.Info("database connected", zap.String("driver", cfg.Database.Driver))
	}

	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// AutoMigrate 自动迁移表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&StockEventModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;comment:姓名"`
	BirthDate string    `gorm:"size:10;not null;comment:出生日期(YYYY-MM-DD)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// Barcode有普通索引（不唯一，多本书可以共用条码）
type BookModel struct {
	ID          uint      `gorm:"primaryKey"`
	Barcode     string    `gorm:"index;size:255;comment:条码"`
	Title       string    `gorm:"size:255;not null;comment:书名"`
	PublishYear int       `gorm:"not null;comment:出版年份"`
	AuthorID    uint      `gorm:"index;not null;comment:作者ID"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// StockEventModel GORM库存流水模型
// 只插入不更新，没有UpdatedAt/DeletedAt
type StockEventModel struct {
	ID       uint      `gorm:"primaryKey"`
	BookID   uint      `gorm:"index:idx_storing_book_date,priority:1;not null;comment:图书ID"`
	Quantity int       `gorm:"not null;comment:数量增量(正数入库,负数出库)"`
	Date     time.Time `gorm:"index:idx_storing_book_date,priority:2;not null;comment:发生时间"`
}

func (StockEventModel) TableName() string {
	return "storing"
}

// NewInMemory 打开内存SQLite库并完成迁移（单元测试、本地演示使用）
func NewInMemory() (*gorm.DB, error) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
	}
	return NewDB(cfg, nil)
}
