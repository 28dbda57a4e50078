package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is everything the server reads from the environment.
type AppConfig struct {
	Port string

	DBDriver   string
	SQLitePath string

	JWTSecret string
	JWTTTL    time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string
	PaymentCurrency   string

	CORSOrigins []string

	RedisAddr          string
	RedisPassword      string
	RateLimitPerMinute int

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFromName       string
	InquiryNotifyEmail string

	SeedAdminEmail    string
	SeedAdminUsername string
	SeedAdminPassword string
}

// Load reads .env (if present) and the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	return &AppConfig{
		Port:       envOrDefault("PORT", "8080"),
		DBDriver:   strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		SQLitePath: envOrDefault("SQLITE_PATH", "travel.db"),

		JWTSecret: envOrDefault("JWT_SECRET", "change-me"),
		JWTTTL:    time.Duration(envIntOrDefault("JWT_TTL_HOURS", 720)) * time.Hour,

		RazorpayKeyID:     envOrDefault("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: envOrDefault("RAZORPAY_KEY_SECRET", ""),
		PaymentCurrency:   envOrDefault("PAYMENT_CURRENCY", "INR"),

		CORSOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),

		RedisAddr:          envOrDefault("REDIS_ADDR", ""),
		RedisPassword:      envOrDefault("REDIS_PASSWORD", ""),
		RateLimitPerMinute: envIntOrDefault("RATE_LIMIT_PER_MINUTE", 20),

		SMTPHost:           envOrDefault("SMTP_HOST", ""),
		SMTPPort:           envIntOrDefault("SMTP_PORT", 587),
		SMTPUsername:       envOrDefault("SMTP_USERNAME", ""),
		SMTPPassword:       envOrDefault("SMTP_PASSWORD", ""),
		SMTPFromName:       envOrDefault("SMTP_FROM_NAME", "Travel Desk"),
		InquiryNotifyEmail: envOrDefault("INQUIRY_NOTIFY_EMAIL", ""),

		SeedAdminEmail:    envOrDefault("SEED_ADMIN_EMAIL", ""),
		SeedAdminUsername: envOrDefault("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminPassword: envOrDefault("SEED_ADMIN_PASSWORD", ""),
	}
}

// MailEnabled reports whether inquiry notifications can be delivered.
func (c *AppConfig) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.InquiryNotifyEmail != ""
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number; using %d", key, raw, def)
		return def
	}
	return n
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
