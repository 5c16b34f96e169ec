package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerAppliesConfig(t *testing.T) {
	cfg := &Config{
		Port:             "9090",
		HTTPReadTimeout:  15 * time.Second,
		HTTPWriteTimeout: 180 * time.Second,
		HTTPIdleTimeout:  60 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	if got := srv.Addr(); got != ":9090" {
		t.Fatalf("Addr() = %q, want :9090", got)
	}
	if srv.server.WriteTimeout != cfg.HTTPWriteTimeout {
		t.Fatalf("WriteTimeout = %v, want %v", srv.server.WriteTimeout, cfg.HTTPWriteTimeout)
	}
	if srv.server.ReadHeaderTimeout == 0 {
		t.Fatalf("ReadHeaderTimeout not set")
	}
}
