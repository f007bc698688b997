package repo

import "errors"

// ErrQuotaExceeded возвращается хранилищем, если запись превысила бы допустимый объём.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KeyValueStore описывает синхронное key-value хранилище клиента
// (аналог localStorage): строковые ключи и строковые значения.
type KeyValueStore interface {
	// GetItem возвращает значение по ключу. ok=false, если ключа нет.
	GetItem(key string) (value string, ok bool, err error)
	// SetItem записывает значение, перезаписывая предыдущее.
	SetItem(key, value string) error
	// RemoveItem удаляет ключ. Отсутствие ключа ошибкой не считается.
	RemoveItem(key string) error
}
