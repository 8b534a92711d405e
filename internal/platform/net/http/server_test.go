package http_test

import (
	"testing"

	"riftcoach/internal/platform/config"
	phttp "riftcoach/internal/platform/net/http"
)

func TestNewServerAddrFromEnv(t *testing.T) {
	t.Setenv("CORE_API_PORT", ":5123")
	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if got := srv.Addr(); got != ":5123" {
		t.Fatalf("Addr = %q, want %q", got, ":5123")
	}
}

func TestNewServerAddrDefault(t *testing.T) {
	t.Setenv("CORE_API_PORT", "")
	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if got := srv.Addr(); got != ":4000" {
		t.Fatalf("Addr = %q, want %q", got, ":4000")
	}
}
