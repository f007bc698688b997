package commands

import (
	"SurveySession/internal/bootstrap"
	"SurveySession/internal/config"
	"SurveySession/internal/service"
)

// openSession открывает хранилище из конфигурации и оборачивает его в SessionStore.
func openSession(cfg *config.Config) (*service.SessionStore, func() error, error) {
	kv, done, err := bootstrap.OpenKVStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewSessionStore(kv, logger), done, nil
}

// closeStore вызывает cleanup хранилища и логирует ошибку закрытия.
func closeStore(done func() error) {
	if err := done(); err != nil {
		logger.Warnw("failed to close storage", "error", err)
	}
}
