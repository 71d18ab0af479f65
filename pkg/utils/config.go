package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Email    EmailConfig
	Security SecurityConfig
	Campaign CampaignConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AdminConfig struct {
	Password           string
	SessionTimeoutSecs int
}

type EmailConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	FromName      string
	BusinessEmail string
	FrontendURL   string
}

type SecurityConfig struct {
	RateLimitRequests   int
	RateLimitWindowSecs int
	MaxLoginAttempts    int
	LoginWindowSecs     int
	BlockDurationSecs   int
}

type CampaignConfig struct {
	MondaySpec  string
	FridaySpec  string
	SendDelayMS int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "goldentouch-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_TIMEOUT_SECS", 3600)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_FROM_NAME", "Golden Touch Cleaning Services")
	viper.SetDefault("FRONTEND_URL", "https://goldentouchcleaning.ca")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECS", 60)
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_WINDOW_SECS", 300)
	viper.SetDefault("BLOCK_DURATION_SECS", 900)
	viper.SetDefault("CAMPAIGN_MONDAY_SPEC", "0 9 * * 1")
	viper.SetDefault("CAMPAIGN_FRIDAY_SPEC", "0 9 * * 5")
	viper.SetDefault("CAMPAIGN_SEND_DELAY_MS", 500)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional outside local development; with an explicit
		// config file viper reports absence as a plain path error
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Password:           viper.GetString("ADMIN_PASSWORD"),
			SessionTimeoutSecs: viper.GetInt("SESSION_TIMEOUT_SECS"),
		},
		Email: EmailConfig{
			Host:          viper.GetString("SMTP_HOST"),
			Port:          viper.GetInt("SMTP_PORT"),
			User:          viper.GetString("SMTP_USER"),
			Password:      viper.GetString("SMTP_PASS"),
			FromName:      viper.GetString("EMAIL_FROM_NAME"),
			BusinessEmail: viper.GetString("BUSINESS_EMAIL"),
			FrontendURL:   viper.GetString("FRONTEND_URL"),
		},
		Security: SecurityConfig{
			RateLimitRequests:   viper.GetInt("RATE_LIMIT_REQUESTS"),
			RateLimitWindowSecs: viper.GetInt("RATE_LIMIT_WINDOW_SECS"),
			MaxLoginAttempts:    viper.GetInt("MAX_LOGIN_ATTEMPTS"),
			LoginWindowSecs:     viper.GetInt("LOGIN_WINDOW_SECS"),
			BlockDurationSecs:   viper.GetInt("BLOCK_DURATION_SECS"),
		},
		Campaign: CampaignConfig{
			MondaySpec:  viper.GetString("CAMPAIGN_MONDAY_SPEC"),
			FridaySpec:  viper.GetString("CAMPAIGN_FRIDAY_SPEC"),
			SendDelayMS: viper.GetInt("CAMPAIGN_SEND_DELAY_MS"),
		},
	}

	// Without this the login path would accept an empty password
	if config.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	return config, nil
}
