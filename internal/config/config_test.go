package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	defer func() {
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("REDIS_PORT")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Redis.Host == "" || cfg.JWT.Secret == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("unexpected default token TTL: %v", cfg.JWT.AccessTokenTTL)
	}
}

func TestLoadConfig_SecretFallback(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.JWT.Secret == "" {
		t.Fatalf("expected development fallback secret, got empty string")
	}
}
