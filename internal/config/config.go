package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers the server can be wired with.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	AppPort       string
	AppEnv        string
	SecretKey     string
	StorageDriver string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "5000"),
		AppEnv:        os.Getenv("APP_ENV"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
	}

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY not set in environment")
	}

	if cfg.StorageDriver == DriverPostgres && cfg.DBHost == "" {
		log.Fatal("STORAGE_DRIVER=postgres but database environment not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
