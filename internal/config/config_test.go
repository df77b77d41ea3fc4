package config

import (
	"reflect"
	"testing"

	"resume-search/internal/infra/pdf"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVER_PORT", "PDF_DIR", "CACHE_FILE", "LOG_LEVEL",
		"PDF_BACKEND", "SKIP_UNREADABLE", "BUILD_WORKERS", "PREVIEW_CHARS", "REBUILDS_PER_MINUTE", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetPDFDir() != "pdfs" {
		t.Fatalf("expected default pdf dir pdfs, got %s", cfg.GetPDFDir())
	}
	if cfg.GetCacheFile() != "resume_db.csv" {
		t.Fatalf("expected default cache file resume_db.csv, got %s", cfg.GetCacheFile())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetPDFBackend() != pdf.BackendFitz {
		t.Fatalf("expected default backend fitz, got %s", cfg.GetPDFBackend())
	}
	if cfg.GetSkipUnreadable() {
		t.Fatalf("expected unreadable PDFs to fail the build by default")
	}
	if cfg.GetBuildWorkers() != 4 {
		t.Fatalf("expected default 4 build workers, got %d", cfg.GetBuildWorkers())
	}
	if cfg.GetPreviewChars() != 2000 {
		t.Fatalf("expected default preview 2000, got %d", cfg.GetPreviewChars())
	}
	if cfg.GetRebuildsPerMinute() != 6 {
		t.Fatalf("expected default 6 rebuilds per minute, got %d", cfg.GetRebuildsPerMinute())
	}
	if len(cfg.GetAllowedOrigins()) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("PDF_DIR", "/data/resumes")
	t.Setenv("CACHE_FILE", "/data/index.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PDF_BACKEND", "GoPDF")
	t.Setenv("SKIP_UNREADABLE", "true")
	t.Setenv("PREVIEW_CHARS", "500")
	t.Setenv("BUILD_WORKERS", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetPDFDir() != "/data/resumes" {
		t.Fatalf("expected pdf dir override, got %s", cfg.GetPDFDir())
	}
	if cfg.GetCacheFile() != "/data/index.csv" {
		t.Fatalf("expected cache file override, got %s", cfg.GetCacheFile())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetPDFBackend() != pdf.BackendGoPDF {
		t.Fatalf("expected backend gopdf, got %s", cfg.GetPDFBackend())
	}
	if !cfg.GetSkipUnreadable() {
		t.Fatalf("expected skip unreadable true")
	}
	if cfg.GetPreviewChars() != 500 {
		t.Fatalf("expected preview 500, got %d", cfg.GetPreviewChars())
	}
	if cfg.GetBuildWorkers() != 8 {
		t.Fatalf("expected 8 build workers, got %d", cfg.GetBuildWorkers())
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.GetAllowedOrigins())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("PREVIEW_CHARS", "not-a-number")
	t.Setenv("SKIP_UNREADABLE", "maybe")
	t.Setenv("BUILD_WORKERS", "0")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetPreviewChars() != 2000 {
		t.Fatalf("expected default preview 2000, got %d", cfg.GetPreviewChars())
	}
	if cfg.GetSkipUnreadable() {
		t.Fatalf("expected default skip unreadable false")
	}
	if cfg.GetBuildWorkers() != 4 {
		t.Fatalf("expected default 4 build workers, got %d", cfg.GetBuildWorkers())
	}
}
