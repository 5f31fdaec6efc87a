package database

import (
	"Retail/config"
	"Retail/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.Postgres.Dsn()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success",
		zap.String("host", conf.Postgres.Host),
		zap.String("database", conf.Postgres.Database),
	)
	return db
}
