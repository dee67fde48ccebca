package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
env: test
http_server:
  port: "8181"
order_db:
  dsn: "postgres://localhost/orders"
auth:
  jwt_secret: "s3cret"
background:
  escrow_sweep_interval: 30s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "test" || cfg.HTTPServer.Port != "8181" || cfg.OrderDB.Dsn == "" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Background.EscrowSweepInterval != 30*time.Second {
		t.Fatalf("sweep interval = %s", cfg.Background.EscrowSweepInterval)
	}
	if cfg.GRPCServer.Port != "9090" || cfg.KafkaService.Topic != "order-events" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, "env: test\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected missing secret error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateKafka(t *testing.T) {
	cfg := &OrderConfig{
		Auth:         Auth{JWTSecret: "x"},
		KafkaService: KafkaService{Enabled: true},
		Background:   Background{EscrowSweepInterval: time.Minute},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected kafka host error")
	}
	cfg.KafkaService.Host = "kafka"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}
