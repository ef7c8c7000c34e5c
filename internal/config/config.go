package config

import (
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"docextractor/internal/domain"
)

// Config holds all application configuration. It is built once at startup and
// passed by pointer to the components that read it.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Upload   UploadConfig
	Provider ProviderConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds limits applied to inbound documents.
type UploadConfig struct {
	MaxFileSizeMB    int64    `mapstructure:"max_file_size_mb"`
	AllowedFileTypes []string `mapstructure:"allowed_file_types"`
}

// ProviderConfig holds settings shared by the upstream provider adapters.
type ProviderConfig struct {
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	RateLimit   int    `mapstructure:"rate_limit"`
	ClaudeModel string `mapstructure:"claude_model"`
	GeminiModel string `mapstructure:"gemini_model"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// IsAllowedFileType reports whether mimeType is on the allow-list.
func (u *UploadConfig) IsAllowedFileType(mimeType string) bool {
	return slices.Contains(u.AllowedFileTypes, mimeType)
}

// Timeout returns the per-call upstream timeout.
func (p *ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSecs) * time.Second
}

// IsDevelopment reports whether the server runs in development mode.
func (s *ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(s.Environment, "development")
}

// Load reads configuration from a .env file (if present) and environment
// variables with the DOCEXTRACT_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config.Load: ignoring .env: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DOCEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8567")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (local frontend)
	v.SetDefault("cors.allowed_origins", "http://localhost:8570,http://127.0.0.1:8570")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.allowed_file_types", strings.Join(domain.DefaultAllowedFileTypes, ","))

	// Provider defaults
	v.SetDefault("provider.timeout_secs", 30)
	v.SetDefault("provider.rate_limit", 60)
	v.SetDefault("provider.claude_model", "claude-3-5-sonnet-20241022")
	v.SetDefault("provider.gemini_model", "gemini-2.0-flash")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	envBindings := map[string]string{
		"server.port":               "DOCEXTRACT_SERVER_PORT",
		"server.read_timeout":       "DOCEXTRACT_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "DOCEXTRACT_SERVER_WRITE_TIMEOUT",
		"server.environment":        "DOCEXTRACT_SERVER_ENVIRONMENT",
		"cors.allowed_origins":      "DOCEXTRACT_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":   "DOCEXTRACT_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.allowed_file_types": "DOCEXTRACT_UPLOAD_ALLOWED_FILE_TYPES",
		"provider.timeout_secs":     "DOCEXTRACT_PROVIDER_TIMEOUT_SECS",
		"provider.rate_limit":       "DOCEXTRACT_PROVIDER_RATE_LIMIT",
		"provider.claude_model":     "DOCEXTRACT_PROVIDER_CLAUDE_MODEL",
		"provider.gemini_model":     "DOCEXTRACT_PROVIDER_GEMINI_MODEL",
		"log.level":                 "DOCEXTRACT_LOG_LEVEL",
		"log.format":                "DOCEXTRACT_LOG_FORMAT",
		"log.file":                  "DOCEXTRACT_LOG_FILE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platforms like Railway or Render set PORT; use it unless the prefixed variable wins.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCEXTRACT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: SplitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB:    v.GetInt64("upload.max_file_size_mb"),
		AllowedFileTypes: SplitList(v.GetString("upload.allowed_file_types")),
	}
	cfg.Provider = ProviderConfig{
		TimeoutSecs: v.GetInt("provider.timeout_secs"),
		RateLimit:   v.GetInt("provider.rate_limit"),
		ClaudeModel: v.GetString("provider.claude_model"),
		GeminiModel: v.GetString("provider.gemini_model"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
		File:   v.GetString("log.file"),
	}

	return cfg, nil
}

// SplitList parses a comma-separated string, trimming blanks and dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
