package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBPath     string
	APIKey     string
	PrivateKey string
	Mnemonic   string
	KeyIndex   uint32
	SessionTTL time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "oracle.sqlite"),
		APIKey:     os.Getenv("API_KEY"),
		PrivateKey: os.Getenv("ORACLE_PRIVATE_KEY"),
		Mnemonic:   os.Getenv("ORACLE_MNEMONIC"),
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		KeyIndex:   uint32(getEnvInt("ORACLE_KEY_INDEX", 0)),
	}

	if cfg.PrivateKey == "" && cfg.Mnemonic == "" {
		log.Fatal("Missing critical environment variables: set ORACLE_PRIVATE_KEY or ORACLE_MNEMONIC")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}
