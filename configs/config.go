package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string

	// APIKey is the shared static key every request must carry.
	APIKey string

	// OrderItemsMode decides whether PUT /api/orders replaces or appends
	// the line items of an order. "replace" | "append".
	OrderItemsMode string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RequestTimeout  time.Duration

	RedisAddr string
	RedisDB   int
	CacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SeedDemo bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "restaurant.db"),
		APIKey:          getEnv("API_KEY", "12345"),
		OrderItemsMode:  getEnv("ORDER_ITEMS_MODE", "replace"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTL:        getEnvDuration("CACHE_TTL", 5*time.Minute),
		KafkaBrokers:    splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "order-events"),
		SeedDemo:        getEnv("SEED_DEMO", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
	}
	return fallback
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
