// Package config reads service settings from a dotenv file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, PostgreSQL, Redis, Kafka, gRPC and JWT settings.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	GRPCPort string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// KafkaBrokers is empty when trade events are disabled.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
}

// Load reads path with godotenv, when it exists, and fills a Config from the
// environment. Variables already set in the environment take precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		GRPCPort: getEnv("GRPC_PORT", "50051"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "database"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "trade-events"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	ints := []struct {
		key string
		def string
		dst *int
	}{
		{"POSTGRES_PORT", "5432", &cfg.PostgresPort},
		{"POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PostgresMaxOpenConns},
		{"POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PostgresMaxIdleConns},
		{"REDIS_PORT", "6379", &cfg.RedisPort},
		{"REDIS_DB", "0", &cfg.RedisDB},
		{"REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize},
		{"REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns},
	}
	for _, v := range ints {
		n, err := strconv.Atoi(getEnv(v.key, v.def))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	expSeconds, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXP_SECOND: %w", err)
	}
	cfg.JWTExp = time.Duration(expSeconds) * time.Second

	return cfg, nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c *Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.GRPCPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
