package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	SMTP     SMTPConfig
	Approval ApprovalConfig
	Work     WorkConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Enabled  bool
}

// ApprovalConfig identifies the system actor that auto-approved requests are
// attributed to.
type ApprovalConfig struct {
	SystemActorEmail string
}

// WorkConfig holds fallback working-time values used when the settings store
// has no company-level override.
type WorkConfig struct {
	DaysPerMonth  float64
	HoursPerDay   float64
	StartTime     string
	EndTime       string
	StaleCutoff   time.Duration
	PendingMaxAge time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments; env vars win.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrpulse-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration (attendance proof photos)
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// SMTP configuration (decision notification emails, optional)
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@hrpulse.local"),
		Enabled:  getEnv("SMTP_HOST", "") != "",
	}

	config.Approval = ApprovalConfig{
		SystemActorEmail: getEnv("SYSTEM_ACTOR_EMAIL", "system@hrpulse.local"),
	}

	daysPerMonth, err := strconv.ParseFloat(getEnv("WORK_DAYS_PER_MONTH", "30"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DAYS_PER_MONTH: %w", err)
	}
	hoursPerDay, err := strconv.ParseFloat(getEnv("WORK_HOURS_PER_DAY", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_HOURS_PER_DAY: %w", err)
	}
	staleCutoff, err := time.ParseDuration(getEnv("ATTENDANCE_STALE_CUTOFF", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_STALE_CUTOFF: %w", err)
	}
	pendingMaxAge, err := time.ParseDuration(getEnv("REQUEST_PENDING_MAX_AGE", "336h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_PENDING_MAX_AGE: %w", err)
	}

	config.Work = WorkConfig{
		DaysPerMonth:  daysPerMonth,
		HoursPerDay:   hoursPerDay,
		StartTime:     getEnv("WORK_START_TIME", "09:00"),
		EndTime:       getEnv("WORK_END_TIME", "18:00"),
		StaleCutoff:   staleCutoff,
		PendingMaxAge: pendingMaxAge,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Work.DaysPerMonth <= 0 {
		return fmt.Errorf("WORK_DAYS_PER_MONTH must be positive")
	}
	if c.Work.HoursPerDay <= 0 {
		return fmt.Errorf("WORK_HOURS_PER_DAY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
