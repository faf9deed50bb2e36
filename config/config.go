package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	SQLitePath  string
	DBType      string
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    24 * time.Hour,
		BcryptCost:  10,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
		} else {
			log.Printf("invalid TOKEN_TTL %q, keeping 24h default", ttl)
		}
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if n, err := strconv.Atoi(cost); err == nil {
			cfg.BcryptCost = n
		}
	}
	return cfg
}
