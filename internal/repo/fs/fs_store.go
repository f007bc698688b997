package fs

import (
	"SurveySession/internal/repo"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const tmpSuffix = ".tmp"

// FSStore — файловое key-value хранилище для CLI: один ключ — один файл в каталоге.
// Каталог играет роль origin: разные каталоги не видят данные друг друга.
type FSStore struct {
	dir   string
	quota int64
}

var _ repo.KeyValueStore = (*FSStore)(nil)

// DefaultDir returns <UserConfigDir>/SurveySession/storage.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "SurveySession", "storage"), nil
}

// NewFSStore создаёт хранилище в каталоге dir (пустой dir — каталог по умолчанию).
// quota ограничивает суммарный размер ключей и значений в байтах; 0 — без ограничения.
func NewFSStore(dir string, quota int64) (*FSStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FSStore{dir: dir, quota: quota}, nil
}

// Dir возвращает каталог хранилища.
func (s *FSStore) Dir() string { return s.dir }

func (s *FSStore) itemPath(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	name := url.PathEscape(key)
	if name == "." || name == ".." || strings.HasSuffix(name, tmpSuffix) {
		return "", fmt.Errorf("invalid key: %q", key)
	}
	return filepath.Join(s.dir, name), nil
}

// GetItem читает значение из файла ключа.
func (s *FSStore) GetItem(key string) (string, bool, error) {
	p, err := s.itemPath(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

// SetItem записывает значение через временный файл и rename,
// чтобы читатель не увидел частично записанные данные.
func (s *FSStore) SetItem(key, value string) error {
	p, err := s.itemPath(key)
	if err != nil {
		return err
	}
	if s.quota > 0 {
		used, err := s.usage(filepath.Base(p))
		if err != nil {
			return err
		}
		if used+int64(len(key)+len(value)) > s.quota {
			return fmt.Errorf("set %q: %w", key, repo.ErrQuotaExceeded)
		}
	}
	// у каждого писателя свой временный файл (CreateTemp создаёт его с правами 0o600)
	f, err := os.CreateTemp(s.dir, filepath.Base(p)+"*"+tmpSuffix)
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// RemoveItem удаляет файл ключа; отсутствующий файл — не ошибка.
func (s *FSStore) RemoveItem(key string) error {
	p, err := s.itemPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// usage считает занятый объём без учёта файла skip (он будет перезаписан).
func (s *FSStore) usage(skip string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == skip || strings.HasSuffix(name, tmpSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, err
		}
		key, err := url.PathUnescape(name)
		if err != nil {
			key = name
		}
		total += int64(len(key)) + info.Size()
	}
	return total, nil
}
