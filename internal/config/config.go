package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	SaleProc SaleProcedureConfig
	TextGen  TextGenConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint for local DynamoDB
	// (e.g. http://dynamodb:8000). Empty means the real service.
	Endpoint string
}

type AuthConfig struct {
	// TokenSecret signs session JWTs (HS256). Must be non-empty outside tests.
	TokenSecret string
	TokenTTL    time.Duration
	// Bootstrap admin, created on startup when the users table is empty.
	BootstrapUsername string
	BootstrapPassword string
}

type SaleProcedureConfig struct {
	// BaseURL of the managed store's RPC endpoint; the manual-sale procedure
	// lives at {BaseURL}/rest/v1/rpc/process_sale.
	BaseURL string
	APIKey  string
}

type TextGenConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Load reads configuration from the environment, with .env support for local
// runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "sublime-ops"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
		},
		Auth: AuthConfig{
			TokenSecret:       getEnv("AUTH_TOKEN_SECRET", ""),
			TokenTTL:          getEnvAsDuration("AUTH_TOKEN_TTL", 12*time.Hour),
			BootstrapUsername: getEnv("AUTH_BOOTSTRAP_USERNAME", ""),
			BootstrapPassword: getEnv("AUTH_BOOTSTRAP_PASSWORD", ""),
		},
		SaleProc: SaleProcedureConfig{
			BaseURL: getEnv("STORE_RPC_BASE_URL", ""),
			APIKey:  getEnv("STORE_RPC_API_KEY", ""),
		},
		TextGen: TextGenConfig{
			BaseURL: getEnv("TEXTGEN_BASE_URL", ""),
			APIKey:  getEnv("TEXTGEN_API_KEY", ""),
			Model:   getEnv("TEXTGEN_MODEL", "gpt-4o-mini"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL is invalid")
	}
	// Sale-procedure and textgen endpoints are optional: the routes that need
	// them report a configuration error at call time.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
