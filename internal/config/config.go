package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	App    App
	DB     DB
	Redis  Redis
	JWT    JWT
	Gomail Gomail
}

type App struct {
	App     string
	Version string
	Port    string
	BaseUrl string
}

type DB struct {
	DbHost string
	DbUser string
	DbPass string
	DbPort string
	DbName string
	DbSsl  string
	DbTz   string
}

type Redis struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

type JWT struct {
	SecretKey string
}

type Gomail struct {
	SmtpHost     string
	SmtpPort     string
	SenderName   string
	AuthEmail    string
	AuthPassword string
}

var config *Config

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading config from environment")
	}

	config = &Config{
		App: App{
			App:     getEnv("APP_NAME", "sitelabour"),
			Version: getEnv("APP_VERSION", "dev"),
			Port:    getEnv("APP_PORT", "3030"),
			BaseUrl: getEnv("APP_BASE_URL", "http://localhost:3030"),
		},
		DB: DB{
			DbHost: getEnv("DB_HOST", "localhost"),
			DbUser: getEnv("DB_USER", "root"),
			DbPass: getEnv("DB_PASS", ""),
			DbPort: getEnv("DB_PORT", "3306"),
			DbName: getEnv("DB_NAME", "sitelabour"),
			DbSsl:  getEnv("DB_SSL", "false"),
			DbTz:   getEnv("DB_TZ", "Asia/Kolkata"),
		},
		Redis: Redis{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWT{
			SecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Gomail: Gomail{
			SmtpHost:     getEnv("SMTP_HOST", ""),
			SmtpPort:     getEnv("SMTP_PORT", "587"),
			SenderName:   getEnv("SMTP_SENDER_NAME", "Site Labour Tracker"),
			AuthEmail:    getEnv("SMTP_AUTH_EMAIL", ""),
			AuthPassword: getEnv("SMTP_AUTH_PASSWORD", ""),
		},
	}
}

func Get() *Config {
	if config == nil {
		Init()
	}
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
