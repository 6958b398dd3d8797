package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Dashboard DashboardConfig
	Hotspot   HotspotConfig
	OAuth     OAuthConfig
	Monitor   MonitorConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	BaseURL            string // public URL the portal is reachable at, used for OAuth redirects
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string // if set, used as-is; otherwise built from components
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT signing and validation settings.
type JWTConfig struct {
	Secret      string
	ExpireHours int
}

// DashboardConfig holds the admin dashboard credential. PasswordHash is a
// bcrypt hash and takes precedence over the plain Password when both are set.
type DashboardConfig struct {
	Password     string
	PasswordHash string
}

// HotspotConfig holds the gateway handoff parameters used to authorize a
// client after login.
type HotspotConfig struct {
	GatewayIP string
	Username  string
	Password  string
	DstURL    string
}

// OAuthConfig holds social login credentials. Empty id/secret pairs
// disable that provider.
type OAuthConfig struct {
	GoogleClientID       string
	GoogleClientSecret   string
	FacebookClientID     string
	FacebookClientSecret string
	StateTTLSeconds      int
}

// MonitorConfig holds uptime monitor settings for the Telegram sidecar.
type MonitorConfig struct {
	TargetURL        string
	TelegramToken    string
	TelegramChatID   int64
	IntervalSeconds  int
	HeartbeatSeconds int
}

// DSN returns the PostgreSQL connection string.
// If DatabaseConfig.URL is set (e.g. DATABASE_URL env), it is used as-is.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			BaseURL:            getEnv("BASE_URL", "http://localhost:8000"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "wifi_portal"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret:      getEnv("SECRET_KEY", "change-me-in-production"),
			ExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		},
		Dashboard: DashboardConfig{
			Password:     getEnv("DASHBOARD_PASSWORD", ""),
			PasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		},
		Hotspot: HotspotConfig{
			GatewayIP: getEnv("GATEWAY_IP", "10.5.50.1"),
			Username:  getEnv("HOTSPOT_USER", "click_to_connect_user"),
			Password:  getEnv("HOTSPOT_PASS", "click_to_connect_user"),
			DstURL:    getEnv("DST_URL", "https://www.nuanu.com"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
			FacebookClientID:     getEnv("FACEBOOK_CLIENT_ID", ""),
			FacebookClientSecret: getEnv("FACEBOOK_CLIENT_SECRET", ""),
			StateTTLSeconds:      getEnvInt("OAUTH_STATE_TTL_SEC", 600),
		},
		Monitor: MonitorConfig{
			TargetURL:        getEnv("MONITOR_TARGET_URL", "http://localhost:8000/health"),
			TelegramToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			TelegramChatID:   chatID,
			IntervalSeconds:  getEnvInt("MONITOR_INTERVAL_SEC", 60),
			HeartbeatSeconds: getEnvInt("MONITOR_HEARTBEAT_SEC", 3600),
		},
	}

	if cfg.Dashboard.Password == "" && cfg.Dashboard.PasswordHash == "" {
		return nil, fmt.Errorf("either DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH must be set")
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
