package config

import (
	"testing"
	"time"

	"github.com/gridline/f1-mirror/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected app env %q, got %q", EnvDev, cfg.AppEnv)
	}
	if cfg.ServiceName != "f1-mirror" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
	if cfg.ErgastBaseURL != "http://api.jolpi.ca/ergast/f1" {
		t.Fatalf("unexpected ergast base url %q", cfg.ErgastBaseURL)
	}
	if cfg.ErgastTimeout != 30*time.Second {
		t.Fatalf("unexpected ergast timeout %v", cfg.ErgastTimeout)
	}
	if cfg.ImportDefaultStartYear != 2020 {
		t.Fatalf("unexpected default start year %d", cfg.ImportDefaultStartYear)
	}
	if cfg.ImportSeasonFloor != 1950 {
		t.Fatalf("unexpected season floor %d", cfg.ImportSeasonFloor)
	}
	if cfg.ImportWorkers != 2 {
		t.Fatalf("unexpected import workers %d", cfg.ImportWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled || cfg.PprofEnabled {
		t.Fatal("expected observability extras to default off")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_RejectsInvalidAppEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("APP_ENV", "qa")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid APP_ENV")
	}
}

func TestLoad_RejectsMalformedInt(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("IMPORT_WORKERS", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed IMPORT_WORKERS")
	}
}

func TestLoad_RejectsNonPositiveWorkers(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("IMPORT_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for IMPORT_WORKERS=0")
	}
}

func TestLoad_RejectsStartYearBeforeFloor(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("IMPORT_DEFAULT_START_YEAR", "1900")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for start year before season floor")
	}
}

func TestLoad_UptraceRequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when uptrace is enabled without a DSN")
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/f1mirror")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ERGAST_TIMEOUT", "5s")
	t.Setenv("IMPORT_WORKERS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("expected production env, got %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ErgastTimeout != 5*time.Second {
		t.Fatalf("unexpected ergast timeout %v", cfg.ErgastTimeout)
	}
	if cfg.ImportWorkers != 4 {
		t.Fatalf("unexpected import workers %d", cfg.ImportWorkers)
	}
}
