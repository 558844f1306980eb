package config

import "os"

const defaultJWTSecret = "development-only-secret"

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	MongoURI    string
	JWTSecret   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:    getEnv("MONGO_URI", ""),
		JWTSecret:   JWTSecret(),
	}
}

// JWTSecret is the single source of the token signing secret. Both the token
// issuer and the auth middleware must use it so the two cannot drift.
func JWTSecret() string {
	return getEnv("JWT_SECRET", defaultJWTSecret)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
