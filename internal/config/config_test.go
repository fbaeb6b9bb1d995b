package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.DataPath != "data/courses.json" {
		t.Errorf("Expected default data path, got %s", cfg.DataPath)
	}
	if !cfg.Neo4jEnabled {
		t.Error("Expected Neo4j enabled by default")
	}
	if cfg.Neo4jURI != "bolt://localhost:7687" {
		t.Errorf("Expected default Neo4j URI, got %s", cfg.Neo4jURI)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.SeedWorkers != 4 {
		t.Errorf("Expected default 4 seed workers, got %d", cfg.SeedWorkers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvNeo4jEnabled, "false")
	t.Setenv(EnvNeo4jURI, "neo4j://graph:7687")
	t.Setenv(EnvShutdownTimeout, "30s")
	t.Setenv(EnvSeedWorkers, "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9100" {
		t.Errorf("Expected port 9100, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Neo4jEnabled {
		t.Error("Expected Neo4j disabled")
	}
	if cfg.Neo4jURI != "neo4j://graph:7687" {
		t.Errorf("Expected overridden Neo4j URI, got %s", cfg.Neo4jURI)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.SeedWorkers != 8 {
		t.Errorf("Expected 8 seed workers, got %d", cfg.SeedWorkers)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvShutdownTimeout, "not-a-duration")
	t.Setenv(EnvSeedWorkers, "not-a-number")
	t.Setenv(EnvNeo4jEnabled, "not-a-bool")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected fallback shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.SeedWorkers != 4 {
		t.Errorf("Expected fallback seed workers, got %d", cfg.SeedWorkers)
	}
	if !cfg.Neo4jEnabled {
		t.Error("Expected fallback Neo4j enabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "missing data path", mutate: func(c *Config) { c.DataPath = "" }, wantErr: true},
		{
			name: "neo4j enabled without uri",
			mutate: func(c *Config) {
				c.Neo4jEnabled = true
				c.Neo4jURI = ""
			},
			wantErr: true,
		},
		{
			name: "neo4j disabled without uri is fine",
			mutate: func(c *Config) {
				c.Neo4jEnabled = false
				c.Neo4jURI = ""
			},
			wantErr: false,
		},
		{name: "zero seed workers", mutate: func(c *Config) { c.SeedWorkers = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:        "8000",
				DataPath:    "data/courses.json",
				Neo4jURI:    "bolt://localhost:7687",
				Neo4jUser:   "neo4j",
				SeedWorkers: 4,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
