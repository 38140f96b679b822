package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	ServerPort    string
}

func Load() *Config {
	// Missing .env is fine; deployments set plain env vars.
	_ = godotenv.Load()

	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
