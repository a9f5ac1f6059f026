package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Port string
	Env  string

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	JWTSecret string

	DataFile  string
	UploadDir string
	PublicDir string

	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from the environment. The signing secret has
// no fallback: running without one would silently issue forgeable
// sessions, so startup fails instead.
func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@hussamawa.com"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		DataFile:  getEnv("DATA_FILE", "data/content.json"),
		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		slog.Error("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
		os.Exit(1)
	}

	return cfg
}

// IsDevelopment reports whether the server runs in development mode.
// Session cookies carry the Secure flag in every other environment.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
