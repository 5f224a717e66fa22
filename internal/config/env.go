package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAPIBaseURL = "https://beta-api.serika.dev"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	authCookieName := os.Getenv("AUTH_COOKIE_NAME")
	sessionSecret := os.Getenv("SESSION_SECRET")
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	environment := os.Getenv("ENVIRONMENT")

	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	apiBaseURL = strings.TrimRight(apiBaseURL, "/")

	if authCookieName == "" {
		authCookieName = "auth_token"
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	var origins []string

	if corsOrigins != "" {
		for _, origin := range strings.Split(corsOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return &Config{
		APIBaseURL:            apiBaseURL,
		AuthCookieName:        authCookieName,
		SessionSecret:         sessionSecret,
		CORSAllowedOrigins:    origins,
		Environment:           environment,
		SealCredentialCookies: os.Getenv("SEAL_CREDENTIAL_COOKIES") == "true",
		OTLPEndpoint:          os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}
