package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is read once from the environment at start-up.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - AWS_REGION (default: us-east-1), AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - BUDGET_REQUESTS_TABLE, CLIENT_RESPONSES_TABLE
//   - POSTGRES_CONN, POSTGRES_MIGRATE (default: false)
//   - RATE_LIMIT_RPS (0 disables the limiter), RATE_LIMIT_BURST (default: 10)
type Config struct {
	Port string

	AWS    AWS
	Tables Tables

	PostgresConn    string
	PostgresMigrate bool

	RateLimitRPS   float64
	RateLimitBurst int
}

type AWS struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type Tables struct {
	BudgetRequests  string
	ClientResponses string
}

func Load() (Config, error) {
	cfg := Config{
		Port: getenvDefault("PORT", "8080"),
		AWS: AWS{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			BudgetRequests:  getenvDefault("BUDGET_REQUESTS_TABLE", "budget_requests"),
			ClientResponses: getenvDefault("CLIENT_RESPONSES_TABLE", "client_responses"),
		},
		PostgresConn: os.Getenv("POSTGRES_CONN"),
	}

	var err error
	if cfg.PostgresMigrate, err = parseBool("POSTGRES_MIGRATE", false); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = parseFloat("RATE_LIMIT_RPS", 0); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = parseInt("RATE_LIMIT_BURST", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be >= 0 and RATE_LIMIT_BURST >= 1")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func parseFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func parseInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
