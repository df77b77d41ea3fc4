package config

import (
	"os"
	"strconv"
	"strings"

	"resume-search/internal/domain"
	"resume-search/internal/infra/pdf"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	PDFDir            string
	CacheFile         string
	LogLevel          string
	PDFBackend        string
	SkipUnreadable    bool
	BuildWorkers      int
	PreviewChars      int
	RebuildsPerMinute int
	AllowedOrigins    []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS hosts provide the listening port via PORT; SERVER_PORT is kept for local runs.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		PDFDir:            getEnvOrDefault("PDF_DIR", "pdfs"),
		CacheFile:         getEnvOrDefault("CACHE_FILE", "resume_db.csv"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		PDFBackend:        strings.ToLower(getEnvOrDefault("PDF_BACKEND", pdf.BackendFitz)),
		SkipUnreadable:    getEnvBoolOrDefault("SKIP_UNREADABLE", false),
		BuildWorkers:      getEnvIntOrDefault("BUILD_WORKERS", 4),
		PreviewChars:      getEnvIntOrDefault("PREVIEW_CHARS", 2000),
		RebuildsPerMinute: getEnvIntOrDefault("REBUILDS_PER_MINUTE", 6),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:8080",
			"http://localhost:3000",
		}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetPDFDir returns the résumé PDF directory
func (c *AppConfig) GetPDFDir() string {
	return c.PDFDir
}

// GetCacheFile returns the cache artifact path
func (c *AppConfig) GetCacheFile() string {
	return c.CacheFile
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFBackend returns the PDF extraction backend name
func (c *AppConfig) GetPDFBackend() string {
	return c.PDFBackend
}

// GetSkipUnreadable reports whether unreadable PDFs are skipped during a build
func (c *AppConfig) GetSkipUnreadable() bool {
	return c.SkipUnreadable
}

// GetBuildWorkers returns the number of PDFs extracted concurrently during a build
func (c *AppConfig) GetBuildWorkers() int {
	return c.BuildWorkers
}

// GetPreviewChars returns the preview length in characters
func (c *AppConfig) GetPreviewChars() int {
	return c.PreviewChars
}

// GetRebuildsPerMinute returns the forced rebuild rate limit
func (c *AppConfig) GetRebuildsPerMinute() int {
	return c.RebuildsPerMinute
}

// GetAllowedOrigins returns the CORS allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
