package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_TTL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("UPLOAD_CONCURRENCY", "")

	cfg := Load()

	if cfg.JWTTTL != 7*24*time.Hour {
		t.Fatalf("expected 7 day token ttl, got %s", cfg.JWTTTL)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.Storage.Concurrency != 4 {
		t.Fatalf("expected upload concurrency 4, got %d", cfg.Storage.Concurrency)
	}
	if !cfg.Photos.Convert {
		t.Fatalf("expected photo conversion on by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("S3_PATH_STYLE", "true")
	t.Setenv("UPLOAD_BACKOFF", "not-a-duration")
	t.Setenv("PHOTO_CONVERT", "false")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %s", cfg.JWTTTL)
	}
	if !cfg.Storage.PathStyle {
		t.Fatalf("expected path style addressing")
	}
	if cfg.Storage.Backoff != 500*time.Millisecond {
		t.Fatalf("invalid duration should fall back to default, got %s", cfg.Storage.Backoff)
	}
	if cfg.Photos.Convert {
		t.Fatalf("expected photo conversion off")
	}
}
