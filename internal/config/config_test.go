package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://offers@localhost/offers")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.FeedCacheTTL != 15*time.Minute {
		t.Fatalf("expected default cache ttl, got %s", cfg.FeedCacheTTL)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", cfg.AllowOrigins)
	}
	if cfg.KafkaBrokers != nil {
		t.Fatalf("expected no brokers, got %v", cfg.KafkaBrokers)
	}
	if cfg.RedirectRatePerSecond != 10 {
		t.Fatalf("expected default redirect rate, got %v", cfg.RedirectRatePerSecond)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("FEED_CACHE_TTL", "bogus")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.FeedCacheTTL != 15*time.Minute {
		t.Fatalf("expected invalid ttl to fall back, got %s", cfg.FeedCacheTTL)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("expected redis db 3, got %d", cfg.RedisDB)
	}
}

func TestLoadPanicsWithoutDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing DATABASE_URL")
		}
	}()
	Load()
}
