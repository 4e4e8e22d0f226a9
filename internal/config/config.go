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
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Enrich  EnrichConfig
	Upload  UploadConfig
	Session SessionConfig
	CORS    CORSConfig
	Email   EmailConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
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

// S3Config holds AWS S3 settings for artifact archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EnrichConfig holds enrichment backend settings.
type EnrichConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	APIToken    string `mapstructure:"api_token"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds CSV upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	PreviewRows   int   `mapstructure:"preview_rows"`
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// SessionConfig holds import session store settings.
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LEADMEND_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEADMEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	// Submit blocks on the enrichment backend, which may take minutes.
	v.SetDefault("server.write_timeout", "330s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "leadmend")
	v.SetDefault("db.password", "leadmend_secret")
	v.SetDefault("db.name", "leadmend_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "leadmend")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "leadmend-artifacts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Enrichment backend defaults
	v.SetDefault("enrich.base_url", "http://localhost:8000")
	v.SetDefault("enrich.api_token", "")
	v.SetDefault("enrich.timeout_secs", 300)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.preview_rows", 10)

	// Session defaults
	v.SetDefault("session.ttl", "1h")
	v.SetDefault("session.sweep_interval", "5m")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@leadmend.com")
	v.SetDefault("email.from_name", "Lead Mend")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "LEADMEND_SERVER_PORT",
		"server.read_timeout":     "LEADMEND_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "LEADMEND_SERVER_WRITE_TIMEOUT",
		"server.environment":      "LEADMEND_SERVER_ENVIRONMENT",
		"db.host":                 "LEADMEND_DB_HOST",
		"db.port":                 "LEADMEND_DB_PORT",
		"db.user":                 "LEADMEND_DB_USER",
		"db.password":             "LEADMEND_DB_PASSWORD",
		"db.name":                 "LEADMEND_DB_NAME",
		"db.sslmode":              "LEADMEND_DB_SSLMODE",
		"db.max_open":             "LEADMEND_DB_MAX_OPEN",
		"db.max_idle":             "LEADMEND_DB_MAX_IDLE",
		"jwt.secret":              "LEADMEND_JWT_SECRET",
		"jwt.access_expiry":       "LEADMEND_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "LEADMEND_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "LEADMEND_JWT_ISSUER",
		"s3.region":               "LEADMEND_S3_REGION",
		"s3.bucket":               "LEADMEND_S3_BUCKET",
		"s3.endpoint":             "LEADMEND_S3_ENDPOINT",
		"s3.access_key":           "LEADMEND_S3_ACCESS_KEY",
		"s3.secret_key":           "LEADMEND_S3_SECRET_KEY",
		"s3.presign_expiry":       "LEADMEND_S3_PRESIGN_EXPIRY",
		"enrich.base_url":         "LEADMEND_ENRICH_BASE_URL",
		"enrich.api_token":        "LEADMEND_ENRICH_API_TOKEN",
		"enrich.timeout_secs":     "LEADMEND_ENRICH_TIMEOUT_SECS",
		"upload.max_file_size_mb": "LEADMEND_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.preview_rows":     "LEADMEND_UPLOAD_PREVIEW_ROWS",
		"session.ttl":             "LEADMEND_SESSION_TTL",
		"session.sweep_interval":  "LEADMEND_SESSION_SWEEP_INTERVAL",
		"cors.allowed_origins":    "LEADMEND_CORS_ALLOWED_ORIGINS",
		"email.provider":          "LEADMEND_EMAIL_PROVIDER",
		"email.region":            "LEADMEND_EMAIL_REGION",
		"email.from_address":      "LEADMEND_EMAIL_FROM_ADDRESS",
		"email.from_name":         "LEADMEND_EMAIL_FROM_NAME",
		"log.level":               "LEADMEND_LOG_LEVEL",
		"log.format":              "LEADMEND_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEADMEND_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEADMEND_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
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
	cfg.Enrich = EnrichConfig{
		BaseURL:     v.GetString("enrich.base_url"),
		APIToken:    v.GetString("enrich.api_token"),
		TimeoutSecs: v.GetInt("enrich.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		PreviewRows:   v.GetInt("upload.preview_rows"),
	}
	cfg.Session = SessionConfig{
		TTL:           v.GetDuration("session.ttl"),
		SweepInterval: v.GetDuration("session.sweep_interval"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
