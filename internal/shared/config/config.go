package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	AWSRegion     string
	SenderAddress string
	Recipients    []string
	MaxPerEmail   int
	EnvTagKey     string
	EnvTagValues  []string
	Categories    []string
	ArchiveBucket string
	ArchivePrefix string
	PreviewPort   string
	Env           string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	sender := os.Getenv("SENDER_EMAIL")
	recipients := splitAndTrim(os.Getenv("RECIPIENT_EMAILS"))

	if env == "production" && (sender == "" || len(recipients) == 0) {
		log.Printf("SENDER_EMAIL and RECIPIENT_EMAILS are required in production")
	}

	return Config{
		AWSRegion:     getEnv("AWS_REGION", ""),
		SenderAddress: sender,
		Recipients:    recipients,
		MaxPerEmail:   getEnvInt("MAX_RECOMMENDATIONS_PER_EMAIL", 20),
		EnvTagKey:     getEnv("ENVIRONMENT_TAG_KEY", "Environment"),
		EnvTagValues:  splitAndTrim(getEnv("ENVIRONMENT_TAG_VALUES", "Production")),
		Categories:    splitAndTrim(getEnv("RECOMMENDATION_CATEGORIES", "performance efficiency,cost optimization")),
		ArchiveBucket: getEnv("REPORT_ARCHIVE_BUCKET", ""),
		ArchivePrefix: getEnv("REPORT_ARCHIVE_PREFIX", ""),
		PreviewPort:   getEnv("PORT", "8080"),
		Env:           env,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Printf("invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
