package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("STORAGE_DIR", "")
	t.Setenv("PRINT_DELAY", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Storage.Dir != "data" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Print.Delay != 250*time.Millisecond {
		t.Fatalf("expected 250ms print delay, got %v", cfg.Print.Delay)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	content := `
http:
  port: "9090"
log:
  level: debug
  format: console
storage:
  driver: sqlite
sqlite:
  path: /tmp/from-file.db
print:
  delay: 1s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SQLITE_PATH", "/tmp/from-env.db")
	t.Setenv("PRINT_DELAY", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != "9090" || cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.SQLite.Path != "/tmp/from-env.db" {
		t.Fatalf("env must override the file: %+v", cfg)
	}
	if cfg.Print.Delay != time.Second {
		t.Fatalf("expected 1s delay, got %v", cfg.Print.Delay)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("STORAGE_DRIVER", "redis")
		if _, err := Load(); !errors.Is(err, ErrUnknownDriver) {
			t.Fatalf("expected ErrUnknownDriver, got %v", err)
		}
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("POSTGRES_DSN", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown gin mode", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("GIN_MODE", "verbose")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
