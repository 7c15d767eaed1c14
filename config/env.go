package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	StoreDriver string
	DB          DBConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Auth        AuthConfig
	Sales       SalesConfig
	HTTP        HTTPConfig
	Gateway     GatewayConfig
	LogLevel    string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Broker      string
	OrdersTopic string
	GroupID     string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration
}

type SalesConfig struct {
	// TrackingMode is "sync" (order-svc updates the ledger inline) or
	// "async" (agg-svc consumes order events).
	TrackingMode string
	Location     *time.Location
}

type HTTPConfig struct {
	PublicBaseURL string
	RateLimit     string
}

type GatewayConfig struct {
	OrderSvcURL string
	SalesSvcURL string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	TrackingSync  = "sync"
	TrackingAsync = "async"
)

// Load reads .env when present and falls back to process environment.
func Load(defaultPort string) Config {
	if err := godotenv.Load(); err != nil {
		logg.Debug("no .env file found, using environment variables")
	}

	loc, err := time.LoadLocation(getEnv("SALES_TIMEZONE", "UTC"))
	if err != nil {
		logg.WithError(err).Warn("unknown SALES_TIMEZONE, falling back to UTC")
		loc = time.UTC
	}

	mode := strings.ToLower(getEnv("SALES_TRACKING_MODE", TrackingSync))
	if mode != TrackingAsync {
		mode = TrackingSync
	}

	return Config{
		Port:        getEnv("PORT", defaultPort),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "platepilot"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Broker:      getEnv("KAFKA_BROKER", "localhost:9092"),
			OrdersTopic: getEnv("ORDER_EVENTS_TOPIC", "orders"),
			GroupID:     getEnv("KAFKA_GROUP_ID", "agg-svc-sales"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me"),
			TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
			OTPTTL:    getDuration("OTP_TTL", 5*time.Minute),
		},
		Sales: SalesConfig{
			TrackingMode: mode,
			Location:     loc,
		},
		HTTP: HTTPConfig{
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
			RateLimit:     getEnv("RATE_LIMIT", "120-M"),
		},
		Gateway: GatewayConfig{
			OrderSvcURL: getEnv("ORDER_SVC_URL", "http://localhost:8081"),
			SalesSvcURL: getEnv("SALES_SVC_URL", "http://localhost:8083"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logg.WithFields(logrus.Fields{"key": key, "value": raw, "default": defaultValue.String()}).
			Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}
