package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"shoe-store/utils"
)

type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	MigrationsDir     string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminEmail        string
	AdminPasswordHash string
	UploadDir         string
	MaxUploadSize     int64
	RecencyWindowDays int
	PriceLocale       string
	CurrencySymbol    string
	ThemeFile         string
	OriginURL         string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5454"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "shoe_store"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "database/migration"),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@shoestore.local"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:     getEnvInt64("MAX_UPLOAD_SIZE", 5242880),
		RecencyWindowDays: utils.ClampRecencyWindow(getEnvInt("RECENCY_WINDOW_DAYS", utils.DefaultRecencyWindowDays)),
		PriceLocale:       getEnv("PRICE_LOCALE", "en-US"),
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "$"),
		ThemeFile:         getEnv("THEME_FILE", "./theme.yaml"),
		OriginURL:         getEnv("ORIGIN_URL", ""),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvInt64(key string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
