package config

import (
	"os"
	"strconv"
	"strings"
)

// CohereConfig holds the generation API settings.
type CohereConfig struct {
	Endpoint       string
	Model          string
	APIKeyVar      string
	CredentialFile string
}

// AppConfig is the process configuration, read once from the environment
// at startup.
type AppConfig struct {
	Port           string
	Environment    string
	CORSOrigins    []string
	MaxUploadBytes int64
	Cohere         CohereConfig
}

func GetAppConfig() AppConfig {
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)

	return AppConfig{
		Port:           getEnv("PORT", "8081"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		CORSOrigins:    splitOrigins(getEnv("CORS_ORIGINS", "*")),
		MaxUploadBytes: maxUpload,
		Cohere: CohereConfig{
			Endpoint:       getEnv("COHERE_ENDPOINT", ""),
			Model:          getEnv("COHERE_MODEL", "command"),
			APIKeyVar:      "COHERE_API_KEY",
			CredentialFile: getEnv("COHERE_KEY_FILE", ".cohere_key"),
		},
	}
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
