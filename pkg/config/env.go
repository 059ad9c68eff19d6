// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSchema       string
	JWTSecret      string
	SmtpFrom       string
	SmtpPassword   string
	SmtpHost       string
	SmtpPort       string
	BibleDataDir   string
	AssistantURL   string
	AssistantKey   string
	AssistantModel string
	PushRelayURL   string
	PushSendTime   string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("GRACEVIEW_DB_HOST", "localhost"),
		DBPort:         getEnv("GRACEVIEW_DB_PORT", "5432"),
		DBName:         getEnv("GRACEVIEW_DB_DATABASE", "graceview"),
		DBUser:         getEnv("GRACEVIEW_DB_USERNAME", "postgres"),
		DBPassword:     getEnv("GRACEVIEW_DB_PASSWORD", ""),
		DBSchema:       getEnv("GRACEVIEW_DB_SCHEMA", "public"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		SmtpFrom:       getEnv("SMTP_FROM", ""),
		SmtpPassword:   getEnv("SMTP_PASSWORD", ""),
		SmtpHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SmtpPort:       getEnv("SMTP_PORT", "587"),
		BibleDataDir:   getEnv("BIBLE_DATA_DIR", "data/bibles"),
		AssistantURL:   getEnv("ASSISTANT_API_URL", "https://api.openai.com/v1/chat/completions"),
		AssistantKey:   getEnv("ASSISTANT_API_KEY", ""),
		AssistantModel: getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
		PushRelayURL:   getEnv("PUSH_RELAY_URL", "https://exp.host/--/api/v2/push/send"),
		PushSendTime:   getEnv("PUSH_SEND_TIME", "07:00"),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
