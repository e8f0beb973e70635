package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreSQL   = "sql"
	StoreMongo = "mongo"

	CheckoutScopeAll  = "all"
	CheckoutScopeUser = "user"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	StoreDriver string
	DBDriver    string
	DatabaseURL string
	MongoURI    string
	MongoDB     string

	JWTSecret []byte
	TokenTTL  time.Duration

	CORSOrigins []string

	KafkaBrokers []string

	RedisAddr       string
	CatalogCacheTTL time.Duration

	CheckoutScope string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "mockshop"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 3001),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		StoreDriver: strings.ToLower(EnvDefault("STORE_DRIVER", StoreSQL)),
		DBDriver:    strings.ToLower(EnvDefault("DB_DRIVER", "sqlite")),
		DatabaseURL: EnvDefault("DATABASE_URL", "file:cart.db"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     EnvDefault("MONGO_DB", "mockshop"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:  EnvDurationDefault("TOKEN_TTL", time.Hour),

		CORSOrigins: CSV(os.Getenv("CORS_ORIGINS")),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CatalogCacheTTL: EnvDurationDefault("CATALOG_CACHE_TTL", time.Minute),

		CheckoutScope: strings.ToLower(EnvDefault("CHECKOUT_SCOPE", CheckoutScopeAll)),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
