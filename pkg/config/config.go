package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig

	Dashboard DashboardConfig
	Analytics AnalyticsConfig
	Export    ExportConfig
	Audit     AuditConfig
}

// UpstreamConfig points the gateway at the alumni-network REST backend.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig governs the admin session slot and its token cookie.
type SessionConfig struct {
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
	JWTSecret    string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// DashboardConfig tunes caching for the dashboard summary read.
type DashboardConfig struct {
	CacheTTL time.Duration
}

// AnalyticsConfig tunes caching for the per-resource analytics reads.
type AnalyticsConfig struct {
	CacheTTL time.Duration
}

// ExportConfig bounds report generation.
type ExportConfig struct {
	MaxRows       int
	FetchPageSize int
}

// AuditConfig enables the optional admin-action audit trail.
type AuditConfig struct {
	Enabled      bool
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 15*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		TTL:          parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
		CookieName:   v.GetString("SESSION_COOKIE_NAME"),
		CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		JWTSecret:    v.GetString("JWT_SECRET"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Dashboard = DashboardConfig{
		CacheTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Analytics = AnalyticsConfig{
		CacheTTL: parseDuration(v.GetString("ANALYTICS_CACHE_TTL"), 10*time.Minute),
	}

	maxRows := v.GetInt("EXPORT_MAX_ROWS")
	if maxRows <= 0 {
		maxRows = 10000
	}
	fetchSize := v.GetInt("EXPORT_FETCH_PAGE_SIZE")
	if fetchSize <= 0 || fetchSize > 100 {
		fetchSize = 100
	}
	cfg.Export = ExportConfig{
		MaxRows:       maxRows,
		FetchPageSize: fetchSize,
	}

	cfg.Audit = AuditConfig{
		Enabled:      v.GetBool("ENABLE_AUDIT"),
		Host:         v.GetString("AUDIT_DB_HOST"),
		Port:         v.GetInt("AUDIT_DB_PORT"),
		User:         v.GetString("AUDIT_DB_USER"),
		Password:     v.GetString("AUDIT_DB_PASSWORD"),
		Name:         v.GetString("AUDIT_DB_NAME"),
		SSLMode:      v.GetString("AUDIT_DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("AUDIT_DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("AUDIT_DB_MAX_IDLE_CONNS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000/api")
	v.SetDefault("UPSTREAM_TIMEOUT", "15s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "token")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("JWT_SECRET", "dev_secret")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("ANALYTICS_CACHE_TTL", "10m")

	v.SetDefault("EXPORT_MAX_ROWS", 10000)
	v.SetDefault("EXPORT_FETCH_PAGE_SIZE", 100)

	v.SetDefault("ENABLE_AUDIT", false)
	v.SetDefault("AUDIT_DB_HOST", "localhost")
	v.SetDefault("AUDIT_DB_PORT", 5432)
	v.SetDefault("AUDIT_DB_USER", "postgres")
	v.SetDefault("AUDIT_DB_PASSWORD", "postgres")
	v.SetDefault("AUDIT_DB_NAME", "alumni_admin_audit")
	v.SetDefault("AUDIT_DB_SSL_MODE", "disable")
	v.SetDefault("AUDIT_DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("AUDIT_DB_MAX_IDLE_CONNS", 5)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
