package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Email    EmailConfig
	Location LocationConfig
}

// LocationConfig selects where the location/SHG tree is loaded from.
type LocationConfig struct {
	// Source is "embedded", "file" or "postgres".
	Source   string `mapstructure:"source"`
	SeedPath string `mapstructure:"seed_path"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for published reports.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SHG_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "shg")
	v.SetDefault("db.password", "shg_secret")
	v.SetDefault("db.name", "shg_portal")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "shg-portal")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "shg-reports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@shg-portal.in")
	v.SetDefault("email.from_name", "SHG Portal")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// Location defaults
	v.SetDefault("location.source", "embedded")
	v.SetDefault("location.seed_path", "")

	envBindings := map[string]string{
		"server.port":             "SHG_SERVER_PORT",
		"server.read_timeout":     "SHG_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SHG_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "SHG_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "SHG_SERVER_ENVIRONMENT",
		"db.host":                 "SHG_DB_HOST",
		"db.port":                 "SHG_DB_PORT",
		"db.user":                 "SHG_DB_USER",
		"db.password":             "SHG_DB_PASSWORD",
		"db.name":                 "SHG_DB_NAME",
		"db.sslmode":              "SHG_DB_SSLMODE",
		"db.max_open":             "SHG_DB_MAX_OPEN",
		"db.max_idle":             "SHG_DB_MAX_IDLE",
		"jwt.secret":              "SHG_JWT_SECRET",
		"jwt.access_expiry":       "SHG_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "SHG_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "SHG_JWT_ISSUER",
		"s3.region":               "SHG_S3_REGION",
		"s3.bucket":               "SHG_S3_BUCKET",
		"s3.endpoint":             "SHG_S3_ENDPOINT",
		"s3.access_key":           "SHG_S3_ACCESS_KEY",
		"s3.secret_key":           "SHG_S3_SECRET_KEY",
		"s3.presign_expiry":       "SHG_S3_PRESIGN_EXPIRY",
		"log.level":               "SHG_LOG_LEVEL",
		"log.format":              "SHG_LOG_FORMAT",
		"cors.allowed_origins":    "SHG_CORS_ALLOWED_ORIGINS",
		"email.provider":          "SHG_EMAIL_PROVIDER",
		"email.region":            "SHG_EMAIL_REGION",
		"email.from_address":      "SHG_EMAIL_FROM_ADDRESS",
		"email.from_name":         "SHG_EMAIL_FROM_NAME",
		"email.frontend_url":      "SHG_EMAIL_FRONTEND_URL",
		"location.source":         "SHG_LOCATION_SOURCE",
		"location.seed_path":      "SHG_LOCATION_SEED_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platforms like Railway and Render set PORT. Use it unless SHG_SERVER_PORT is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHG_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	cfg.Location = LocationConfig{
		Source:   v.GetString("location.source"),
		SeedPath: v.GetString("location.seed_path"),
	}
	switch cfg.Location.Source {
	case "embedded", "file", "postgres":
	default:
		return nil, fmt.Errorf("unknown location source %q", cfg.Location.Source)
	}

	return cfg, nil
}
