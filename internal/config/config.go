package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds settings for the S3-compatible object store.
type StorageConfig struct {
	// Driver selects the client implementation: "minio" or "s3".
	Driver    string
	Endpoint  string
	Port      string
	UseSSL    bool
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// HostPort returns the endpoint host, with the port appended only when it is
// not the standard port for the configured scheme.
func (s StorageConfig) HostPort() string {
	if s.Port == "" || (s.UseSSL && s.Port == "443") || (!s.UseSSL && s.Port == "80") {
		return s.Endpoint
	}
	return s.Endpoint + ":" + s.Port
}

// URL returns the endpoint as an absolute URL.
func (s StorageConfig) URL() string {
	scheme := "http"
	if s.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + s.HostPort()
}

// GalleryConfig holds the photo listing and presign limits.
type GalleryConfig struct {
	URLExpiry       time.Duration
	MaxPresignKeys  int
	ListPageSize    int
	SignConcurrency int
}

// AuthConfig holds the identity provider settings for admin routes.
type AuthConfig struct {
	GoogleClientID string
	Issuer         string
	AllowedDomain  string
}

// UploadConfig holds editor image upload limits.
type UploadConfig struct {
	MaxBytes  int64
	KeyPrefix string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables and injected into components.
type AppConfig struct {
	AppHost        string
	AppSchemes     []string
	Port           string
	Environment    string
	AllowedOrigins []string
	Database       DatabaseConfig
	Storage        StorageConfig
	Gallery        GalleryConfig
	Auth           AuthConfig
	Upload         UploadConfig
	Log            LogConfig
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		AppSchemes:     getEnvList("APP_SCHEMES", []string{"http", "https"}),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "production"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "minio"),
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			Port:      getEnv("MINIO_PORT", "443"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", true),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Region:    getEnv("MINIO_REGION", "us-east-1"),
		},
		Gallery: GalleryConfig{
			URLExpiry:       getEnvDuration("GALLERY_URL_EXPIRY", time.Hour),
			MaxPresignKeys:  getEnvInt("GALLERY_MAX_PRESIGN_KEYS", 100),
			ListPageSize:    getEnvInt("GALLERY_LIST_PAGE_SIZE", 1000),
			SignConcurrency: getEnvInt("GALLERY_SIGN_CONCURRENCY", 16),
		},
		Auth: AuthConfig{
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
			Issuer:         getEnv("AUTH_ISSUER", "https://accounts.google.com"),
			AllowedDomain:  getEnv("AUTH_ALLOWED_DOMAIN", "gyccyouthlab.org"),
		},
		Upload: UploadConfig{
			MaxBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
			KeyPrefix: getEnv("UPLOAD_KEY_PREFIX", "htdocs-full/upload/editor_img"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
