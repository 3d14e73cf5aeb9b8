package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig is built once at startup and injected into routes/worker.
// No mutable globals beyond the value LoadEnv returns.
type AppConfig struct {
	Port          string
	JWTSecret     string
	EnrollmentKey string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded!")
	}

	cfg := AppConfig{
		Port:          GetEnv("PORT", "3000"),
		JWTSecret:     GetEnv("JWT_SECRET"),
		EnrollmentKey: GetEnv("ENROLLMENT_KEY"),
		SMTPHost:      GetEnv("SMTP_HOST"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      GetEnv("SMTP_USER"),
		SMTPPass:      GetEnv("SMTP_PASS"),
		SMTPFrom:      GetEnv("SMTP_FROM", "no-reply@university.local"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if cfg.EnrollmentKey == "" {
		log.Println("❌ ENROLLMENT_KEY is not set!")
	} else {
		log.Println("✅ ENROLLMENT_KEY loaded.")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
