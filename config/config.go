package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	FrontendPort   string
	Env            string
	DBPath         string
	APIURL         string
	LogLevel       string
	CORSOrigins    string
	AdminUsername  string
	AdminEmail     string
	AdminPassword  string
	PasswordScheme string
	IdentityHeader string
	SessionTTL     time.Duration

	// Peers allowed to set X-Forwarded-For. The API trusts the local
	// frontend by default; the frontend trusts nobody unless configured.
	TrustedProxies         []string
	FrontendTrustedProxies []string
}

var AppConfig *Config

// Load reads .env (if present) and the environment into AppConfig.
func Load() error {
	_ = godotenv.Load()

	port := GetEnv("PORT", "3000")

	ttl, err := time.ParseDuration(GetEnv("SESSION_TTL", "24h"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	cfg := &Config{
		Port:           port,
		FrontendPort:   os.Getenv("FRONTEND_PORT"),
		Env:            GetEnv("ENV", "development"),
		DBPath:         GetEnv("DB_PATH", "./data/notes.db"),
		APIURL:         GetEnv("API_URL", "http://localhost:"+port),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		AdminUsername:  GetEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:     GetEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:  GetEnv("ADMIN_PASSWORD", "admin"),
		PasswordScheme: GetEnv("PASSWORD_SCHEME", "plain"),
		IdentityHeader: GetEnv("IDENTITY_HEADER", "X-User-ID"),
		SessionTTL:     ttl,

		TrustedProxies:         splitList(GetEnv("TRUSTED_PROXIES", "127.0.0.1,::1")),
		FrontendTrustedProxies: splitList(os.Getenv("FRONTEND_TRUSTED_PROXIES")),
	}

	if _, set := os.LookupEnv("FRONTEND_PORT"); !set {
		cfg.FrontendPort = "3001"
	}

	switch cfg.PasswordScheme {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("unknown PASSWORD_SCHEME %q", cfg.PasswordScheme)
	}

	AppConfig = cfg
	return nil
}

// splitList parses a comma separated env value, dropping empty items.
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
