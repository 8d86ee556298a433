package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr %q", cfg.HTTPAddr)
	}
	if cfg.CartBackend != BackendPostgres {
		t.Fatalf("unexpected CartBackend %q", cfg.CartBackend)
	}
	if cfg.JWTTTL != 72*time.Hour {
		t.Fatalf("unexpected JWTTTL %v", cfg.JWTTTL)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected ShutdownTimeout %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected CORSOrigins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CART_BACKEND", BackendRedis)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_TTL_SECONDS", "3600")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg := FromEnv()

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("unexpected HTTPAddr %q", cfg.HTTPAddr)
	}
	if cfg.CartBackend != BackendRedis || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("redis backend not picked up: %+v", cfg)
	}
	if cfg.JWTTTL != time.Hour {
		t.Fatalf("unexpected JWTTTL %v", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected CORSOrigins %v", cfg.CORSOrigins)
	}
}

func TestEnvDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("JWT_TTL_SECONDS", "soon")

	cfg := FromEnv()
	if cfg.JWTTTL != 72*time.Hour {
		t.Fatalf("expected default TTL on bad input, got %v", cfg.JWTTTL)
	}
}
