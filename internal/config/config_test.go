package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	oldArgs := os.Args
	os.Args = append([]string{oldArgs[0]}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("STORE_DIR", "")
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("DATABASE_URI", "")
	// t.Setenv восстановит исходное значение после теста
	t.Setenv("STORE_QUOTA_BYTES", "")
	_ = os.Unsetenv("STORE_QUOTA_BYTES")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Backend != BackendFS {
		t.Fatalf("Backend default expected %q, got %q", BackendFS, cfg.Backend)
	}
	if cfg.QuotaBytes != DefaultQuotaBytes {
		t.Fatalf("QuotaBytes default expected %d, got %d", DefaultQuotaBytes, cfg.QuotaBytes)
	}
	if cfg.Version {
		t.Fatalf("Version must be false by default")
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("CLIENT_DB_PATH", "/tmp/kv.sqlite")
	t.Setenv("STORE_QUOTA_BYTES", "0")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Backend != BackendSQLite {
		t.Fatalf("Backend expected from env 'sqlite', got %q", cfg.Backend)
	}
	if cfg.ClientDBPath != "/tmp/kv.sqlite" {
		t.Fatalf("ClientDBPath expected '/tmp/kv.sqlite', got %q", cfg.ClientDBPath)
	}
	if cfg.QuotaBytes != 0 {
		t.Fatalf("QuotaBytes 0 must disable quota, got %d", cfg.QuotaBytes)
	}
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("STORE_DIR", "/env/dir")

	resetFlagSet(t, "-backend", "db", "-store-dir", "/flag/dir", "-quota", "128", "whoami")
	cfg := NewConfig()

	if cfg.Backend != BackendDB {
		t.Fatalf("flag must override env backend, got %q", cfg.Backend)
	}
	if cfg.StoreDir != "/flag/dir" {
		t.Fatalf("flag must override env store dir, got %q", cfg.StoreDir)
	}
	if cfg.QuotaBytes != 128 {
		t.Fatalf("QuotaBytes expected 128, got %d", cfg.QuotaBytes)
	}
	if args := flag.Args(); len(args) != 1 || args[0] != "whoami" {
		t.Fatalf("positional args expected [whoami], got %v", args)
	}
}

func TestNewConfig_UnknownBackendFallback(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Backend != BackendFS {
		t.Fatalf("unknown backend must fallback to %q, got %q", BackendFS, cfg.Backend)
	}
}

func TestNewConfig_MemoryBackendNotSelectable(t *testing.T) {
	// хранилище в памяти теряет данные между запусками CLI
	t.Setenv("STORE_BACKEND", "memory")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Backend != BackendFS {
		t.Fatalf("memory backend must fallback to %q, got %q", BackendFS, cfg.Backend)
	}
}
