package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Registry RegistryConfig
	Extract  ExtractConfig
	LLM      LLMConfig
	Audit    AuditConfig
}

// RegistryConfig holds registry-source configuration
type RegistryConfig struct {
	Path            string
	AgreementsSheet string
	RatesSheet      string
}

// ExtractConfig holds PDF text-extraction configuration
type ExtractConfig struct {
	PdftotextBin string
}

// LLMConfig holds text-understanding service configuration
type LLMConfig struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// AuditConfig holds the optional audit-trail configuration
type AuditConfig struct {
	DBPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Path:            getEnv("REGISTRY_PATH", "Service Agreement Table (Rolling).xlsx"),
			AgreementsSheet: getEnv("REGISTRY_AGREEMENTS_SHEET", "Service Agreements"),
			RatesSheet:      getEnv("REGISTRY_RATES_SHEET", "Vendors Rates"),
		},
		Extract: ExtractConfig{
			PdftotextBin: getEnv("PDFTOTEXT_BIN", "pdftotext"),
		},
		LLM: LLMConfig{
			APIURL:      getEnv("AMPLIFY_API_URL", ""),
			APIKey:      getEnv("AMPLIFY_API_KEY", ""),
			Model:       getEnv("AMPLIFY_MODEL", "gpt-4o"),
			Temperature: getEnvAsFloat32("AMPLIFY_TEMPERATURE", 0.5),
			Timeout:     getEnvAsDuration("AMPLIFY_TIMEOUT", 30*time.Second),
		},
		Audit: AuditConfig{
			DBPath: getEnv("AUDIT_DB_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A missing service endpoint or
// credential is a configuration error, reported distinctly from runtime
// failures so operators can tell "not configured" from "tried and failed".
func (c *Config) Validate() error {
	if c.Registry.Path == "" {
		return NewAppError("CONFIG_ERROR", "REGISTRY_PATH is required", ErrConfiguration)
	}
	if c.LLM.APIURL == "" {
		return NewAppError("CONFIG_ERROR", "AMPLIFY_API_URL is required", ErrConfiguration)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "AMPLIFY_API_KEY is required", ErrConfiguration)
	}
	return nil
}
