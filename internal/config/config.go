package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string
	DatabaseURI string
	Key         string

	Gateway        string
	GatewayToken   string
	GatewayBaseURL string

	UnlockPrice float64

	SMTPAddress string
	SMTPFrom    string
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.Key, "k", "", "JWT signing key")
	flag.StringVar(&cfg.Gateway, "g", "pagarme", "active payment gateway")
	flag.Float64Var(&cfg.UnlockPrice, "u", 10, "credits debited when accepting an order")
	flag.Parse()

	ReadServerEnvironment(cfg)

	return cfg
}

func ReadServerEnvironment(cfg *Config) {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		cfg.DatabaseURI = databaseURI
	}

	if key := os.Getenv("DESOPILA_KEY"); key != "" {
		cfg.Key = key
	}

	if gateway := os.Getenv("GATEWAY"); gateway != "" {
		cfg.Gateway = gateway
	}

	if token := os.Getenv("GATEWAY_TOKEN"); token != "" {
		cfg.GatewayToken = token
	}

	if baseURL := os.Getenv("GATEWAY_BASE_URL"); baseURL != "" {
		cfg.GatewayBaseURL = baseURL
	}

	if unlockPrice := os.Getenv("UNLOCK_PRICE"); unlockPrice != "" {
		if parsed, err := strconv.ParseFloat(unlockPrice, 64); err == nil {
			cfg.UnlockPrice = parsed
		}
	}

	if smtpAddress := os.Getenv("SMTP_ADDRESS"); smtpAddress != "" {
		cfg.SMTPAddress = smtpAddress
	}

	if smtpFrom := os.Getenv("SMTP_FROM"); smtpFrom != "" {
		cfg.SMTPFrom = smtpFrom
	}
}
