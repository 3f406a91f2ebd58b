package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int    `validate:"min=1,max=65535"`
	APIKey       string `validate:"required"`
	LogLevel     string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat    string `validate:"oneof=text json"`
	LogAddSource bool
	Environment  string
	ServiceName  string
	Version      string

	StorageDriver     string `validate:"oneof=memory sqlite postgres"`
	SQLitePath        string `validate:"required_if=StorageDriver sqlite"`
	DBUser            string `validate:"required_if=StorageDriver postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=StorageDriver postgres"`
	DBPort            string `validate:"required_if=StorageDriver postgres"`
	DBName            string `validate:"required_if=StorageDriver postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CacheSize int `validate:"min=1"`
	CacheTTL  time.Duration

	SimulationWorkers  int `validate:"min=1"`
	MaxSimulationGames int `validate:"min=1"`

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3Prefix    string
	S3PathStyle bool

	TrustedProxies  []string
	MaxBodyBytes    int64 `validate:"min=1"`
	DeadLetterPath  string
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       getEnv("API_KEY", ""),
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		LogAddSource: getEnvAsBool("LOG_ADD_SOURCE", false),
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:  getEnv("SERVICE_NAME", DefaultServiceName),
		Version:      getEnv("VERSION", DefaultVersion),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver)),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "aquaponics"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CacheSize: getEnvAsInt("MATCH_CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("MATCH_CACHE_TTL", DefaultCacheTTL),

		SimulationWorkers:  getEnvAsInt("SIMULATION_WORKERS", DefaultSimWorkers),
		MaxSimulationGames: getEnvAsInt("MAX_SIMULATION_GAMES", DefaultMaxSimGames),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", DefaultS3Region),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Prefix:    getEnv("S3_PREFIX", DefaultS3Prefix),
		S3PathStyle: getEnvAsBool("S3_PATH_STYLE", false),

		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		MaxBodyBytes:    int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		DeadLetterPath:  getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and the settings the storage driver needs
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
