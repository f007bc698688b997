package service

import (
	"SurveySession/internal/model"
	"SurveySession/internal/repo"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// SessionKey — ключ, под которым хранится запись сессии.
const SessionKey = "surveyUserInfo"

// SessionStore сохраняет, читает и удаляет единственную запись сессии.
// Чтение никогда не возвращает ошибку, запись пробрасывает ошибки хранилища.
type SessionStore struct {
	store  repo.KeyValueStore
	logger *zap.SugaredLogger
}

// NewSessionStore создаёт SessionStore поверх key-value хранилища.
func NewSessionStore(store repo.KeyValueStore, logger *zap.SugaredLogger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionStore{store: store, logger: logger}
}

// Get возвращает сохранённую сессию или nil, если её нет либо данные повреждены.
func (s *SessionStore) Get() *model.Session {
	raw, ok, err := s.store.GetItem(SessionKey)
	if err != nil {
		s.logger.Warnw("failed to read session", "key", SessionKey, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warnw("failed to parse stored session", "key", SessionKey, "error", err)
		return nil
	}
	if !truthy(v) {
		return nil
	}
	obj, isObj := v.(map[string]any)
	if !isObj {
		s.logger.Warnw("stored session is not a JSON object", "key", SessionKey,
			"type", fmt.Sprintf("%T", v))
		return nil
	}
	return &model.Session{UserInfo: obj["userInfo"], LoginTime: obj["loginTime"]}
}

// Set сериализует запись и перезаписывает ею ключ сессии.
func (s *SessionStore) Set(userInfo, loginTime any) error {
	b, err := json.Marshal(model.Session{UserInfo: userInfo, LoginTime: loginTime})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.SetItem(SessionKey, string(b)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear удаляет запись сессии. Отсутствие записи ошибкой не является.
func (s *SessionStore) Clear() error {
	if err := s.store.RemoveItem(SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// truthy повторяет проверку истинности значения, разобранного из JSON:
// null, false, 0 и пустая строка считаются ложными.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
