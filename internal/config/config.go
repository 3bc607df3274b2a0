package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Database             DatabaseConfig
	Mailer               MailerConfig
	Booking              BookingConfig
	Logging              LoggingConfig
	AppURL               string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// MailerConfig holds SMTP settings for outgoing notification email
type MailerConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// BookingConfig holds the appointment conflict-window settings.
// An existing appointment blocks a new booking when its scheduled time falls
// inside [candidate - WindowBeforeMinutes, candidate + WindowAfterMinutes].
type BookingConfig struct {
	WindowBeforeMinutes int
	WindowAfterMinutes  int
	MeetingBaseURL      string
}

// LoggingConfig holds structured log output settings
type LoggingConfig struct {
	Level       string
	FileEnabled bool
	FilePath    string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "depresscare"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := getEnvInt("JWT_EXPIRATION_MINUTES", 60)
	if err != nil {
		return nil, err
	}

	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	windowBefore, err := getEnvInt("BOOKING_WINDOW_BEFORE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	windowAfter, err := getEnvInt("BOOKING_WINDOW_AFTER_MINUTES", 90)
	if err != nil {
		return nil, err
	}

	logMaxSize, err := getEnvInt("LOG_FILE_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	logMaxBackups, err := getEnvInt("LOG_FILE_MAX_BACKUPS", 5)
	if err != nil {
		return nil, err
	}
	logMaxAge, err := getEnvInt("LOG_FILE_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:4200"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Database:             dbConfig,
		Mailer: MailerConfig{
			Enabled:  getEnv("SMTP_ENABLED", "true") == "true",
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "DepressCare <no-reply@depresscare.com>"),
		},
		Booking: BookingConfig{
			WindowBeforeMinutes: windowBefore,
			WindowAfterMinutes:  windowAfter,
			MeetingBaseURL:      getEnv("MEETING_BASE_URL", "https://meet.depresscare.com"),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			FileEnabled: getEnv("LOG_FILE_ENABLED", "false") == "true",
			FilePath:    getEnv("LOG_FILE_PATH", "logs/depresscare.log"),
			MaxSizeMB:   logMaxSize,
			MaxBackups:  logMaxBackups,
			MaxAgeDays:  logMaxAge,
		},
		AppURL: getEnv("APP_URL", "http://localhost:3001"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
