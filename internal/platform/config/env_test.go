package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	StoragePath string `env:"MAGEKNIGHT_TEST_STORAGE_PATH" envDefault:"games.db"`
	Seed        int64  `env:"MAGEKNIGHT_TEST_SEED" envDefault:"0"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.StoragePath != "games.db" {
		t.Fatalf("expected default storage path, got %q", cfg.StoragePath)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MAGEKNIGHT_TEST_SEED", "42")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MAGEKNIGHT_TEST_SEED", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
