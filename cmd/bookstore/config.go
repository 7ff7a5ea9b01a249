package main

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envSeedFile  = "BOOKSTORE_SEED_FILE"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"
)

type config struct {
	SeedFile  string
	LogLevel  string
	LogFormat string
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		SeedFile:  getEnv(envSeedFile, ""),
		LogLevel:  getEnv(envLogLevel, "info"),
		LogFormat: getEnv(envLogFormat, "text"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
