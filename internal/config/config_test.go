package config_test

import (
	"testing"
	"time"

	"github.com/comment-board-api/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "3000", Env: "development"},
		Database: config.DatabaseConfig{
			Host: "localhost", Port: "5432", User: "postgres",
			Password: "postgres", Name: "comment_board", SSLMode: "disable",
		},
		Redis: config.RedisConfig{Addr: "localhost:6379"},
		Admin: config.AdminConfig{
			PasswordHash:  "$2b$10$example",
			SessionSecret: "secret",
			SessionTTL:    24 * time.Hour,
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing db host", func(c *config.Config) { c.Database.Host = "" }},
		{"missing db name", func(c *config.Config) { c.Database.Name = "" }},
		{"missing redis addr", func(c *config.Config) { c.Redis.Addr = "" }},
		{"missing admin hash", func(c *config.Config) { c.Admin.PasswordHash = "" }},
		{"missing session secret", func(c *config.Config) { c.Admin.SessionSecret = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := validConfig()
	if cfg.Server.IsProduction() {
		t.Error("development must not be production")
	}
	cfg.Server.Env = "production"
	if !cfg.Server.IsProduction() {
		t.Error("production env not detected")
	}
}

func TestLoad_DefaultsAndRequired(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "$2b$10$example")
	t.Setenv("SESSION_SECRET", "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Admin.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session TTL, got %v", cfg.Admin.SessionTTL)
	}
}

func TestLoad_MissingCredential(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("SESSION_SECRET", "secret")

	if _, err := config.Load(); err == nil {
		t.Error("Load must fail without ADMIN_PASSWORD_HASH")
	}
}

func TestGetDSN(t *testing.T) {
	dsn := validConfig().Database.GetDSN()
	want := "host=localhost port=5432 user=postgres password=postgres dbname=comment_board sslmode=disable"
	if dsn != want {
		t.Errorf("Unexpected DSN: %s", dsn)
	}
}
