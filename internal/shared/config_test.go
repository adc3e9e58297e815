package shared

import (
	"os"
	"testing"
	"time"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			k, v := key, old
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(key)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t,
		"APP_ENV", "HTTP_ADDR", "METRICS_ADDR",
		"BACKEND_BASE_URL", "BOT_SECRET", "BACKEND_TIMEOUT", "BACKEND_RPS",
	)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":5055" {
		t.Fatalf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.BackendBase != "http://localhost:3000/api" {
		t.Fatalf("BackendBase = %q", c.BackendBase)
	}
	if c.BotSecret != "greenstay-ai" {
		t.Fatalf("BotSecret = %q", c.BotSecret)
	}
	if c.BackendTimeout != 10*time.Second {
		t.Fatalf("BackendTimeout = %v", c.BackendTimeout)
	}
	if c.BackendRPS != 5 {
		t.Fatalf("BackendRPS = %d", c.BackendRPS)
	}
	if c.MetricsAddr != "" {
		t.Fatalf("MetricsAddr should default to empty, got %q", c.MetricsAddr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/v1")
	t.Setenv("BOT_SECRET", "override-secret")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("BACKEND_RPS", "20")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":9999" || c.BackendBase != "https://api.example.com/v1" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.BotSecret != "override-secret" {
		t.Fatalf("BotSecret = %q", c.BotSecret)
	}
	if c.BackendTimeout != 3*time.Second || c.BackendRPS != 20 {
		t.Fatalf("numeric overrides not applied: %+v", c)
	}
}
