package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gridline/f1-mirror/internal/platform/logging"
)

const (
	EnvDev   = "development"
	EnvStage = "staging"
	EnvProd  = "production"
)

// Config is the full runtime configuration, loaded once from the
// environment at startup. Load fails fast on anything malformed.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr           string
	CORSAllowedOrigins []string

	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	LogLevel logging.Level

	ErgastBaseURL string
	ErgastTimeout time.Duration

	ImportDefaultStartYear int
	ImportSeasonFloor      int
	ImportWorkers          int

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeAppName           string
	PyroscopeServerAddress     string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

func Load() (Config, error) {
	cfg := Config{
		AppEnv:         strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", EnvDev))),
		ServiceName:    getEnv("SERVICE_NAME", "f1-mirror"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:    strings.TrimSpace(getEnv("DATABASE_URL", "")),
		ErgastBaseURL:  strings.TrimSpace(getEnv("ERGAST_BASE_URL", "http://api.jolpi.ca/ergast/f1")),
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:      getEnv("PPROF_ADDR", ":6060"),
	}

	switch cfg.AppEnv {
	case EnvDev, EnvStage, EnvProd:
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q", cfg.AppEnv)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = getEnvAsInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.DBConnMaxLifetime, err = getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	cfg.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	if cfg.ErgastTimeout, err = getEnvAsDuration("ERGAST_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.ImportDefaultStartYear, err = getEnvAsInt("IMPORT_DEFAULT_START_YEAR", 2020); err != nil {
		return Config{}, err
	}
	if cfg.ImportSeasonFloor, err = getEnvAsInt("IMPORT_SEASON_FLOOR", 1950); err != nil {
		return Config{}, err
	}
	if cfg.ImportWorkers, err = getEnvAsInt("IMPORT_WORKERS", 2); err != nil {
		return Config{}, err
	}
	if cfg.ImportWorkers <= 0 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be positive")
	}
	if cfg.ImportDefaultStartYear < cfg.ImportSeasonFloor {
		return Config{}, fmt.Errorf("IMPORT_DEFAULT_START_YEAR %d is before IMPORT_SEASON_FLOOR %d",
			cfg.ImportDefaultStartYear, cfg.ImportSeasonFloor)
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	cfg.PyroscopeAppName = getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName)
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	cfg.PyroscopeAuthToken = getEnv("PYROSCOPE_AUTH_TOKEN", "")
	cfg.PyroscopeBasicAuthUser = getEnv("PYROSCOPE_BASIC_AUTH_USER", "")
	cfg.PyroscopeBasicAuthPassword = getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func parseLogLevel(raw string) (logging.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return logging.LevelDebug, nil
	case "info", "":
		return logging.LevelInfo, nil
	case "warn", "warning":
		return logging.LevelWarn, nil
	case "error":
		return logging.LevelError, nil
	default:
		return logging.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
