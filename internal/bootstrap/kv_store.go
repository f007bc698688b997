package bootstrap

import (
	"SurveySession/internal/config"
	"SurveySession/internal/repo"
	fsrepo "SurveySession/internal/repo/fs"
	"SurveySession/internal/repo/gormdb"
	reposqlite "SurveySession/internal/repo/sqlite"
	"fmt"
)

func noop() error { return nil }

// OpenKVStore открывает key-value хранилище, выбранное в конфигурации,
// выполняет миграции и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenKVStore(cfg *config.Config) (repo.KeyValueStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, _, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		return s, s.Close, nil

	case config.BackendDB:
		db, err := gormdb.InitDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open db store: %w", err)
		}
		s := gormdb.NewGormStore(db)
		return s, s.Close, nil

	case config.BackendFS, "":
		s, err := fsrepo.NewFSStore(cfg.StoreDir, cfg.QuotaBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("open fs store: %w", err)
		}
		return s, noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
