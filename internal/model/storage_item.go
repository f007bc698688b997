package model

import "time"

// StorageItem — строка key-value хранилища в БД (backend "db").
type StorageItem struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName фиксирует имя таблицы storage_items (backend "sqlite" хранит данные в своей таблице storage).
func (StorageItem) TableName() string { return "storage_items" }
