package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DBDriver string // sqlite / postgres

	SQLitePath string // sqliteのDBファイル（database.db）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string // sslmode（disable）

	DatabaseURL string // あれば最優先のDSN
}

// Loadは環境変数から設定を読む。
// 元システムは設定ゼロで動くので、こちらも全項目にデフォルトを持たせる。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DBDriver: getenv("DB_DRIVER", "sqlite"),

		SQLitePath: getenv("SQLITE_PATH", "database.db"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "shopapi"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be sqlite or postgres")
	}

	return cfg, nil
}

// Addrは":8080"の形にそろえる。
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
