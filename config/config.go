package config

import (
	"os"
	"strings"
)

type Config struct {
	Server Server
	Mongo  Mongo
	OpenAI OpenAI
	CORS   CORS
	Log    Log
}

type Server struct {
	Port string
}

type Mongo struct {
	URI    string
	DBName string
}

type OpenAI struct {
	APIKey string
	Model  string
}

type CORS struct {
	Origins []string
}

type Log struct {
	Level       string
	Development bool
}

// Load reads configuration from the environment. Every value has a
// development default; nothing is hard-required so the service can boot
// against a local MongoDB with no .env at all.
func Load() Config {
	return Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Mongo: Mongo{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "finaura_db"),
		},
		OpenAI: OpenAI{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o"),
		},
		CORS: CORS{
			Origins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Log: Log{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnv("APP_ENV", "development") != "production",
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
