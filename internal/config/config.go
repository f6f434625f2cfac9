package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cricstats/livestats/internal/platform/logging"
)

// Config stores runtime configuration for the service. All knobs come from
// the environment and are validated once, inside Load.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBPath             string
	SeedDemoData       bool
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration

	// Cricbuzz (RapidAPI) credentials. An empty key disables ingestion and
	// live-data features; the dashboard keeps serving cached store contents.
	CricbuzzAPIKey     string
	CricbuzzAPIHost    string
	CricbuzzTimeout    time.Duration
	CricbuzzMaxRetries int
	CricbuzzBackoff    time.Duration
	CricbuzzCallDelay  time.Duration

	IngestPlayerLimit int
	IngestMatchLimit  int

	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	LogLevel logging.Level
}

// IngestionEnabled reports whether remote fetches are possible at all.
func (c Config) IngestionEnabled() bool {
	return strings.TrimSpace(c.CricbuzzAPIKey) != ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO_DATA: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cricbuzzTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_TIMEOUT: %w", err)
	}
	if cricbuzzTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_TIMEOUT must be > 0")
	}
	cricbuzzMaxRetries, err := getEnvAsInt("CRICBUZZ_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_MAX_RETRIES: %w", err)
	}
	if cricbuzzMaxRetries < 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_MAX_RETRIES must be >= 0")
	}
	cricbuzzBackoff, err := time.ParseDuration(getEnv("CRICBUZZ_BACKOFF", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_BACKOFF: %w", err)
	}
	if cricbuzzBackoff <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_BACKOFF must be > 0")
	}
	cricbuzzCallDelay, err := time.ParseDuration(getEnv("CRICBUZZ_CALL_DELAY", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CALL_DELAY: %w", err)
	}
	if cricbuzzCallDelay < 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_CALL_DELAY must be >= 0")
	}

	ingestPlayerLimit, err := getEnvAsInt("INGEST_PLAYER_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_PLAYER_LIMIT: %w", err)
	}
	if ingestPlayerLimit < 1 {
		return Config{}, fmt.Errorf("INGEST_PLAYER_LIMIT must be >= 1")
	}
	ingestMatchLimit, err := getEnvAsInt("INGEST_MATCH_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_MATCH_LIMIT: %w", err)
	}
	if ingestMatchLimit < 1 {
		return Config{}, fmt.Errorf("INGEST_MATCH_LIMIT must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "cricket-livestats-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		DBPath:                 getEnv("DB_PATH", "cricket.db"),
		SeedDemoData:           seedDemoData,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		CricbuzzAPIKey:         strings.TrimSpace(getEnv("CRICBUZZ_API_KEY", "")),
		CricbuzzAPIHost:        strings.TrimSpace(getEnv("CRICBUZZ_API_HOST", "cricbuzz-cricket.p.rapidapi.com")),
		CricbuzzTimeout:        cricbuzzTimeout,
		CricbuzzMaxRetries:     cricbuzzMaxRetries,
		CricbuzzBackoff:        cricbuzzBackoff,
		CricbuzzCallDelay:      cricbuzzCallDelay,
		IngestPlayerLimit:      ingestPlayerLimit,
		IngestMatchLimit:       ingestMatchLimit,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("DB_PATH cannot be empty")
	}
	if cfg.CricbuzzAPIHost == "" {
		return Config{}, fmt.Errorf("CRICBUZZ_API_HOST cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
