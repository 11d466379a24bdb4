package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	GymName           string
	AdminEmail        string
	AdminPasswordHash string
	CronSecret        string

	CloudinaryURL string

	EmailFrom     string
	EmailFromName string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	RedisAddr     string

	// ReminderWindowDays is how many days before expiry the renewal
	// reminder goes out. The sweep targets that exact calendar day.
	ReminderWindowDays int
	// SweepSchedule is a cron expression for the in-process daily sweep.
	// Empty disables the scheduler (the HTTP trigger still works).
	SweepSchedule string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "gym"),
		JWTSecret: getEnv("JWT_SECRET", "secret-key"),

		GymName:           getEnv("GYM_NAME", "Biswajit Gym"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@biswajitgym.com"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		CronSecret:        getEnv("CRON_SECRET", ""),

		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),

		EmailFrom:     getEnv("EMAIL_FROM", "noreply@biswajitgym.com"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Biswajit Gym"),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),

		ReminderWindowDays: getEnvInt("REMINDER_WINDOW_DAYS", 5),
		SweepSchedule:      getEnv("SWEEP_SCHEDULE", "0 8 * * *"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
