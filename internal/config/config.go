package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	Timezone       string
}

// PayrollConfig holds the constants the payroll estimator runs with.
type PayrollConfig struct {
	StandardHoursPerDay float64
	WorkingDaysPerMonth float64
	OvertimeRatePerHour float64
	DefaultBaseSalary   float64
}

type CronConfig struct {
	Enabled              bool
	AutoCheckoutInterval time.Duration
	AutoCheckoutAfter    time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "crm_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll constants
	config.Payroll = PayrollConfig{}
	if config.Payroll.StandardHoursPerDay, err = getEnvFloat("STANDARD_HOURS_PER_DAY", payroll.DefaultStandardHoursPerDay); err != nil {
		return nil, err
	}
	if config.Payroll.WorkingDaysPerMonth, err = getEnvFloat("WORKING_DAYS_PER_MONTH", payroll.DefaultWorkingDaysPerMonth); err != nil {
		return nil, err
	}
	if config.Payroll.OvertimeRatePerHour, err = getEnvFloat("OVERTIME_RATE_PER_HOUR", payroll.DefaultOvertimeRatePerHour); err != nil {
		return nil, err
	}
	if config.Payroll.DefaultBaseSalary, err = getEnvFloat("DEFAULT_BASE_SALARY", payroll.DefaultBaseSalary); err != nil {
		return nil, err
	}

	// Cron configuration
	interval, err := time.ParseDuration(getEnv("AUTO_CHECKOUT_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_CHECKOUT_INTERVAL: %w", err)
	}
	after, err := time.ParseDuration(getEnv("AUTO_CHECKOUT_AFTER", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_CHECKOUT_AFTER: %w", err)
	}
	config.Cron = CronConfig{
		Enabled:              getEnv("CRON_ENABLED", "true") == "true",
		AutoCheckoutInterval: interval,
		AutoCheckoutAfter:    after,
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
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if err := c.Rates().Validate(); err != nil {
		return err
	}
	if c.Cron.AutoCheckoutInterval <= 0 {
		return fmt.Errorf("AUTO_CHECKOUT_INTERVAL must be positive")
	}
	return nil
}

// Rates returns the payroll estimator constants.
func (c *Config) Rates() payroll.Rates {
	return payroll.Rates{
		StandardHoursPerDay: c.Payroll.StandardHoursPerDay,
		WorkingDaysPerMonth: c.Payroll.WorkingDaysPerMonth,
		OvertimeRatePerHour: c.Payroll.OvertimeRatePerHour,
		DefaultBaseSalary:   c.Payroll.DefaultBaseSalary,
	}
}

// Location returns the configured business timezone, UTC when unset.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// LogLevel maps LOG_LEVEL onto slog levels.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
