package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

const sampleConfig = `
server:
  port: ":8080"
  env: development
storage:
  database_url: postgresql://localhost/charlie
  redis_url: redis://localhost:6379
auth:
  jwt_secret: not-a-real-secret
  jwt_lifetime: 720h
cloudinary:
  cloud_name: charlie
  api_key: key
  api_secret: secret
  folder: charlie-chat
`

func TestConfigUnmarshal(t *testing.T) {
	var cfg Config

	if err := yaml.Unmarshal([]byte(sampleConfig), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.Server.Port != ":8080" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Server.Env = %q", cfg.Server.Env)
	}
	if cfg.Database.DatabaseURL != "postgresql://localhost/charlie" {
		t.Errorf("Database.DatabaseURL = %q", cfg.Database.DatabaseURL)
	}
	if cfg.Auth.JWTLifetime != "720h" {
		t.Errorf("Auth.JWTLifetime = %q", cfg.Auth.JWTLifetime)
	}
	if cfg.Cloudinary.Folder != "charlie-chat" {
		t.Errorf("Cloudinary.Folder = %q", cfg.Cloudinary.Folder)
	}
}
