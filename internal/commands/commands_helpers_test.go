package commands

import (
	"SurveySession/internal/config"
	"bytes"
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста
// и возвращает конфиг fs‑хранилища во временном каталоге.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return &config.Config{Backend: config.BackendFS, StoreDir: filepath.Join(dir, "storage")}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
