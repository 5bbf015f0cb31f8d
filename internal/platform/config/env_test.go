package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port    int      `env:"SITE_TEST_PORT" envDefault:"123"`
	Locales []string `env:"SITE_TEST_LOCALES" envSeparator:"," envDefault:"en,ar"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if len(cfg.Locales) != 2 || cfg.Locales[0] != "en" || cfg.Locales[1] != "ar" {
		t.Fatalf("expected default locales [en ar], got %v", cfg.Locales)
	}
}

func TestParseEnvAppliesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NAJRAN_SITE_TEST_PORT", "8080")
	t.Setenv("SITE_TEST_PORT", "9090")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected prefixed port 8080, got %d", cfg.Port)
	}
}

func TestParseEnvWithPrefixCustom(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CUSTOM_SITE_TEST_LOCALES", "ar")

	if err := ParseEnvWithPrefix(&cfg, "CUSTOM_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if len(cfg.Locales) != 1 || cfg.Locales[0] != "ar" {
		t.Fatalf("expected locales [ar], got %v", cfg.Locales)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NAJRAN_SITE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
