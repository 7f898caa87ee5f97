package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/infrastructure/database"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/storage"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Store configuration
	StoreBackend    string
	StoreKey        string
	StoreQuotaBytes int
	BoltPath        string
	BoltLockTimeout time.Duration

	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// MongoDB configuration
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	// Submission configuration
	MaxImageBytes      int64
	DefaultLocation    string
	DefaultSellerName  string
	DisabledCategories []string
	SnowflakeNode      int64

	// Assist configuration
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	AssistTimeout  time.Duration
	AssistWorkers  int
	AssistTaskTTL  time.Duration
	AssistLanguage string

	// Scheduled jobs
	StatsSchedule string
	SweepSchedule string

	// Logging configuration
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// categoriesFile is the layout of CATEGORIES_FILE.
type categoriesFile struct {
	Disabled []string `yaml:"disabled"`
}

// Load loads configuration from environment variables. Variables from an
// optional .env file (ENV_FILE) fill in anything not already set.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		StoreBackend:        getEnv("STORE_BACKEND", storage.BackendBolt),
		StoreKey:            getEnv("STORE_KEY", "electro_listings_v3"),
		StoreQuotaBytes:     getEnvInt("STORE_QUOTA_BYTES", 0),
		BoltPath:            getEnv("BOLT_PATH", "./data/listings.db"),
		BoltLockTimeout:     getEnvDuration("BOLT_LOCK_TIMEOUT", time.Second),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "listing_marketplace"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGO_DATABASE", "listing_marketplace"),
		MongoConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		MaxImageBytes:       int64(getEnvInt("MAX_IMAGE_BYTES", 5*1024*1024)),
		DefaultLocation:     getEnv("DEFAULT_LOCATION", domain.DefaultLocation),
		DefaultSellerName:   getEnv("DEFAULT_SELLER_NAME", domain.DefaultSellerName),
		DisabledCategories:  getEnvList("DISABLED_CATEGORIES", domain.DefaultDisabledCategories),
		SnowflakeNode:       int64(getEnvInt("SNOWFLAKE_NODE", 1)),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL:       getEnv("GEMINI_BASE_URL", ""),
		AssistTimeout:       getEnvDuration("ASSIST_TIMEOUT", 30*time.Second),
		AssistWorkers:       getEnvInt("ASSIST_WORKERS", 4),
		AssistTaskTTL:       getEnvDuration("ASSIST_TASK_TTL", 10*time.Minute),
		AssistLanguage:      getEnv("ASSIST_LANGUAGE", "Arabic"),
		StatsSchedule:       getEnv("STATS_SCHEDULE", "@every 30s"),
		SweepSchedule:       getEnv("SWEEP_SCHEDULE", "@every 1m"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             getEnv("LOG_FILE", ""),
		LogMaxSizeMB:        getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:       getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:       getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}

	if path := getEnv("CATEGORIES_FILE", ""); path != "" {
		disabled, err := loadCategoriesFile(path)
		if err != nil {
			return nil, err
		}
		cfg.DisabledCategories = disabled
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if !storage.IsValidBackend(c.StoreBackend) {
		return fmt.Errorf("STORE_BACKEND must be one of: %s", strings.Join(storage.ValidBackends, ", "))
	}
	if c.StoreKey == "" {
		return fmt.Errorf("STORE_KEY is required")
	}
	if c.StoreQuotaBytes < 0 {
		return fmt.Errorf("STORE_QUOTA_BYTES must not be negative")
	}
	if c.StoreBackend == storage.BackendBolt && c.BoltPath == "" {
		return fmt.Errorf("BOLT_PATH is required for the bolt backend")
	}
	if c.StoreBackend == storage.BackendPostgres && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
		return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required for the postgres backend")
	}
	if c.StoreBackend == storage.BackendMongo && c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required for the mongo backend")
	}
	if c.MaxImageBytes < 1 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be at least 1")
	}
	for _, category := range c.DisabledCategories {
		if !domain.IsValidCategory(category) {
			return fmt.Errorf("disabled category %q is not a known category", category)
		}
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("SNOWFLAKE_NODE must be between 0 and 1023")
	}
	if c.AssistWorkers < 1 {
		return fmt.Errorf("ASSIST_WORKERS must be at least 1")
	}
	if c.AssistTimeout <= 0 {
		return fmt.Errorf("ASSIST_TIMEOUT must be positive")
	}
	if c.AssistTaskTTL <= 0 {
		return fmt.Errorf("ASSIST_TASK_TTL must be positive")
	}
	if _, err := cron.ParseStandard(c.StatsSchedule); err != nil {
		return fmt.Errorf("STATS_SCHEDULE: %w", err)
	}
	if _, err := cron.ParseStandard(c.SweepSchedule); err != nil {
		return fmt.Errorf("SWEEP_SCHEDULE: %w", err)
	}
	return nil
}

// StorageOptions maps the configuration to storage.Open options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:         c.StoreBackend,
		BoltPath:        c.BoltPath,
		BoltLockTimeout: c.BoltLockTimeout,
		Redis: database.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
		Postgres: database.PoolConfig{
			Host:              c.DBHost,
			Port:              c.DBPort,
			User:              c.DBUser,
			Password:          c.DBPassword,
			Database:          c.DBName,
			SSLMode:           c.DBSSLMode,
			MaxConns:          c.DBMaxConns,
			MinConns:          c.DBMinConns,
			MaxConnLifetime:   c.DBMaxConnLifetime,
			MaxConnIdleTime:   c.DBMaxConnIdleTime,
			HealthCheckPeriod: c.DBHealthCheckPeriod,
		},
		MongoURI:            c.MongoURI,
		MongoDatabase:       c.MongoDatabase,
		MongoConnectTimeout: c.MongoConnectTimeout,
	}
}

// LogFileOptions maps the configuration to the rotating log file options.
func (c *Config) LogFileOptions() logger.FileOptions {
	return logger.FileOptions{
		Path:       c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

func loadCategoriesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}
	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}
	if f.Disabled == nil {
		return []string{}, nil
	}
	return f.Disabled, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated list. A variable that is set but empty
// yields an empty list rather than the default.
func getEnvList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return append([]string(nil), defaultValue...)
	}
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
