package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr string
	Env  string

	// StorageBackend escolhe a implementação da porta: file, redis ou postgres.
	StorageBackend string
	StorageFile    string
	RedisAddr      string
	RedisPassword  string
	DatabaseURL    string

	BrasilAPIURL string

	RabbitHost string
	RabbitPort string
	RabbitUser string
	RabbitPass string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
	MailTo   string
}

func Load() Config {
	godotenv.Load()

	return Config{
		Addr: getEnv("ADDR", ":8080"),
		Env:  getEnv("APP_ENV", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StorageFile:    getEnv("STORAGE_FILE", "mini-crm-store.json"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		BrasilAPIURL: os.Getenv("BRASILAPI_URL"),

		RabbitHost: os.Getenv("RABBITMQ_HOST"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),
		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@mini-crm.dev"),
		MailTo:   os.Getenv("MAIL_TO"),
	}
}

// SetupLogger configura o logrus global: JSON em produção, texto no resto.
func SetupLogger(env string) {
	if env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
