package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client settings.
	APIBaseURL      string
	CredentialsPath string

	// Demo backend settings.
	JWTSecret      string
	ServerPort     string
	RequestsPerMin int

	Env string
}

func Load() *Config {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:      getEnv("SPA_API_URL", "http://localhost:8080"),
		CredentialsPath: getEnv("SPA_CREDENTIALS_PATH", defaultCredentialsPath()),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		RequestsPerMin:  getEnvInt("MAX_REQUESTS_PER_MIN", 200),
		Env:             getEnv("ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".spa-console", "credentials.json")
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
