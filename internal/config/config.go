package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	AppEnv                string
	DatabaseURL           string
	JWTSecret             string
	SessionTTL            time.Duration
	AllowOrigins          []string
	LogstashTCPAddr       string
	MinIOEndpoint         string
	MinIOAccessKey        string
	MinIOSecretKey        string
	MinIOUseSSL           bool
	MinIOPublicURL        string
	DemoFeedBucket        string
	DemoFeedObject        string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	FeedCacheTTL          time.Duration
	DemoFeedRefreshCron   string
	KafkaBrokers          []string
	KafkaClickTopic       string
	RedirectRatePerSecond float64
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	redisDB := 0
	if v, err := strconv.Atoi(getenv("REDIS_DB", "0")); err == nil && v >= 0 {
		redisDB = v
	}

	redirectRate := 10.0
	if v, err := strconv.ParseFloat(getenv("REDIRECT_RATE_PER_SECOND", "10"), 64); err == nil && v > 0 {
		redirectRate = v
	}

	var brokers []string
	if raw := getenv("KAFKA_BROKERS", ""); strings.TrimSpace(raw) != "" {
		brokers = splitAndTrim(raw)
	}

	return Config{
		Port:                  getenv("PORT", "8080"),
		AppEnv:                getenv("APP_ENV", "development"),
		DatabaseURL:           must("DATABASE_URL"),
		JWTSecret:             must("JWT_SECRET"),
		SessionTTL:            duration("SESSION_TTL", 24*time.Hour),
		AllowOrigins:          splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:       getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:         must("MINIO_ENDPOINT"),
		MinIOAccessKey:        must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:        must("MINIO_SECRET_KEY"),
		MinIOUseSSL:           getenv("MINIO_USE_SSL", "false") == "true",
		MinIOPublicURL:        getenv("MINIO_PUBLIC_URL", ""),
		DemoFeedBucket:        getenv("DEMO_FEED_BUCKET", "fitcity-offers"),
		DemoFeedObject:        getenv("DEMO_FEED_OBJECT", "demo/offers.json"),
		RedisAddr:             getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getenv("REDIS_PASSWORD", ""),
		RedisDB:               redisDB,
		FeedCacheTTL:          duration("FEED_CACHE_TTL", 15*time.Minute),
		DemoFeedRefreshCron:   getenv("DEMO_FEED_REFRESH_CRON", "*/10 * * * *"),
		KafkaBrokers:          brokers,
		KafkaClickTopic:       getenv("KAFKA_CLICK_TOPIC", "offers.outbound-clicks"),
		RedirectRatePerSecond: redirectRate,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func duration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(k, ""))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
