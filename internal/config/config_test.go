package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBName != "society" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.JWTTTL != 72*time.Hour {
		t.Errorf("JWTTTL = %s", cfg.JWTTTL)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")

	cfg := Load()
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.JWTTTL != 30*time.Minute {
		t.Errorf("JWTTTL = %s", cfg.JWTTTL)
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("SMTPPort = %d", cfg.SMTPPort)
	}
	if cfg.RateLimitPerMin != 10 {
		t.Errorf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()
	if cfg.JWTTTL != 72*time.Hour {
		t.Errorf("JWTTTL = %s, want default", cfg.JWTTTL)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d, want default", cfg.SMTPPort)
	}
}
