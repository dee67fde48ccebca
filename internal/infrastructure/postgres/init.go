package postgres

import (
	"log"

	"github.com/prabindersinghh/leorit-order-service/internal/config"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	// Without a migrations directory the schema is derived from the models.
	if cfg.OrderDB.MigrationsPath == "" {
		if err := db.AutoMigrate(&models.OrderModel{}, &models.OrderQCModel{}, &models.OrderEventModel{}); err != nil {
			log.Fatalf("failed to automigrate: %v\n", err)
		}
	}

	return db
}
