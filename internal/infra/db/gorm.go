package db

import (
	"fmt"

	"shopapi/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	if cfg.DBDriver == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
			cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	// デフォルトは元システムと同じsqliteファイル1つ
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
