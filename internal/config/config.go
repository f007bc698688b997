package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Поддерживаемые backend'ы key-value хранилища.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
	BackendDB     = "db"
)

// DefaultQuotaBytes — типичный лимит localStorage в браузерах (5 MiB).
const DefaultQuotaBytes = 5 << 20

type Config struct {
	Backend      string `env:"STORE_BACKEND"`
	StoreDir     string `env:"STORE_DIR"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	DatabaseDSN  string `env:"DATABASE_URI"`
	QuotaBytes   int64  `env:"STORE_QUOTA_BYTES" envDefault:"-1"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env служат значениями по умолчанию для флагов
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend: fs | sqlite | db")
	flag.StringVar(&cfg.StoreDir, "store-dir", cfg.StoreDir, "directory for the fs backend")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to SQLite file for the sqlite backend")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "DSN for the db backend (PostgreSQL URL or SQLite path)")
	flag.Int64Var(&cfg.QuotaBytes, "quota", cfg.QuotaBytes, "storage quota in bytes for the fs backend (0 = unlimited)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые и невалидные значения.
// Пути по умолчанию вычисляют сами backend'ы.
func (c *Config) applyDefaults() {
	switch c.Backend {
	case BackendFS, BackendSQLite, BackendDB:
	default:
		c.Backend = BackendFS
	}
	if c.QuotaBytes < 0 {
		c.QuotaBytes = DefaultQuotaBytes
	}
}
