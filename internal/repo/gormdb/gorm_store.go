package gormdb

import (
	"SurveySession/internal/model"
	"SurveySession/internal/repo"
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// GormStore — key-value хранилище поверх GORM (PostgreSQL или SQLite).
type GormStore struct {
	db *gorm.DB
}

var _ repo.KeyValueStore = (*GormStore)(nil)

// IsPostgresDSN определяет, что DSN относится к PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// InitDB открывает соединение по DSN и выполняет миграцию таблицы storage_items.
// Для SQLite используется драйвер modernc.org/sqlite (без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty database DSN")
	}
	var dial gorm.Dialector
	if IsPostgresDSN(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.StorageItem{}); err != nil {
		return nil, err
	}
	return db, nil
}

// NewGormStore создаёт хранилище поверх уже открытого *gorm.DB.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Close закрывает пул соединений.
func (s *GormStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetItem возвращает значение по ключу.
func (s *GormStore) GetItem(key string) (string, bool, error) {
	var it model.StorageItem
	err := s.db.Where("key = ?", key).Take(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return it.Value, true, nil
}

// SetItem вставляет или перезаписывает значение ключа.
func (s *GormStore) SetItem(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	it := &model.StorageItem{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(it).Error
}

// RemoveItem удаляет ключ; отсутствие записи не считается ошибкой.
func (s *GormStore) RemoveItem(key string) error {
	return s.db.Where("key = ?", key).Delete(&model.StorageItem{}).Error
}
