package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "OPENROUTER_API_KEY", "OPENROUTER_MODEL",
		"ALLOWED_ORIGINS", "RESUME_PATH", "SITE_URL", "SITE_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.DatabaseURL != "sqlite://portfolio.db" {
		t.Fatalf("expected sqlite default database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.OpenRouterModel != "deepseek/deepseek-r1:free" {
		t.Fatalf("expected default model, got %q", cfg.OpenRouterModel)
	}
	if cfg.OpenRouterAPIKey != "" {
		t.Fatalf("expected empty API key by default, got %q", cfg.OpenRouterAPIKey)
	}
	if cfg.ResumePath != "data/resume.json" {
		t.Fatalf("expected default resume path, got %q", cfg.ResumePath)
	}
	want := []string{"http://localhost:5173", "http://localhost:3000"}
	if len(cfg.CORSAllowOrigins) != len(want) {
		t.Fatalf("expected %d default origins, got %v", len(want), cfg.CORSAllowOrigins)
	}
	for i, origin := range want {
		if cfg.CORSAllowOrigins[i] != origin {
			t.Fatalf("origin %d: expected %q, got %q", i, origin, cfg.CORSAllowOrigins[i])
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PRODUCTION")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("ALLOWED_ORIGINS", " https://rohit.dev , https://www.rohit.dev ,, ")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected normalized production env, got %q", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://u:p@db:5432/portfolio" {
		t.Fatalf("expected database URL override, got %q", cfg.DatabaseURL)
	}
	if cfg.OpenRouterAPIKey != "sk-or-test" {
		t.Fatalf("expected API key override, got %q", cfg.OpenRouterAPIKey)
	}
	if len(cfg.CORSAllowOrigins) != 2 {
		t.Fatalf("expected blank origins dropped, got %v", cfg.CORSAllowOrigins)
	}
	if cfg.CORSAllowOrigins[0] != "https://rohit.dev" || cfg.CORSAllowOrigins[1] != "https://www.rohit.dev" {
		t.Fatalf("expected trimmed origins, got %v", cfg.CORSAllowOrigins)
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prod", "production"},
		{"Production", "production"},
		{"staging", "staging"},
		{"local", "local"},
		{"development", "dev"},
		{"", "dev"},
		{"garbage", "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.in); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
