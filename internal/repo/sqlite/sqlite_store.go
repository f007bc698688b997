package sqlite

import (
	"SurveySession/internal/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore — key-value хранилище в локальной БД SQLite (таблица storage).
type SQLiteStore struct {
	db *sql.DB
}

var _ repo.KeyValueStore = (*SQLiteStore)(nil)

// DefaultPath returns <UserConfigDir>/SurveySession/storage.sqlite.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "SurveySession", "storage.sqlite"), nil
}

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath
// и возвращает хранилище. Вторым значением возвращается фактический путь к БД.
func Open(dbPath string) (*SQLiteStore, string, error) {
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, "", err
		}
		dbPath = p
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, "", err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &SQLiteStore{db: db}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы storage.
func (s *SQLiteStore) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// GetItem возвращает значение по ключу.
func (s *SQLiteStore) GetItem(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// SetItem вставляет или перезаписывает значение ключа.
func (s *SQLiteStore) SetItem(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	now := time.Now().Unix()
	_, err := s.db.Exec(`INSERT INTO storage(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	return err
}

// RemoveItem удаляет ключ; отсутствие строки не считается ошибкой.
func (s *SQLiteStore) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM storage WHERE key = ?`, key)
	return err
}
