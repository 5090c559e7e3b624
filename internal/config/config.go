package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	S3        S3Config
	Log       LogConfig
	CORS      CORSConfig
	Extractor ExtractorConfig
	Transform TransformConfig
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

// S3Config holds AWS S3 settings for run artifacts.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractorConfig holds LLM chunk extractor settings.
type ExtractorConfig struct {
	Provider        string `mapstructure:"provider"`
	APIKey          string `mapstructure:"api_key"`
	DefaultModel    string `mapstructure:"default_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// TransformConfig holds flat-to-nested transform settings.
type TransformConfig struct {
	// AllowOverwrite opts the tree builder into last-write-wins on shape
	// conflicts instead of reporting them as key errors.
	AllowOverwrite bool `mapstructure:"allow_overwrite"`
}

// Load reads configuration from environment variables with the VIVARAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VIVARAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "vivaran")
	v.SetDefault("db.password", "vivaran_secret")
	v.SetDefault("db.name", "vivaran_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "vivaran-extractions")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.max_file_size_mb", 50)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extractor defaults
	v.SetDefault("extractor.provider", "gemini")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.default_model", "gemini-2.0-flash")
	v.SetDefault("extractor.timeout_secs", 120)
	v.SetDefault("extractor.max_output_tokens", 16384)

	// Transform defaults
	v.SetDefault("transform.allow_overwrite", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "VIVARAN_SERVER_PORT",
		"server.read_timeout":         "VIVARAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "VIVARAN_SERVER_WRITE_TIMEOUT",
		"server.environment":          "VIVARAN_SERVER_ENVIRONMENT",
		"db.host":                     "VIVARAN_DB_HOST",
		"db.port":                     "VIVARAN_DB_PORT",
		"db.user":                     "VIVARAN_DB_USER",
		"db.password":                 "VIVARAN_DB_PASSWORD",
		"db.name":                     "VIVARAN_DB_NAME",
		"db.sslmode":                  "VIVARAN_DB_SSLMODE",
		"db.max_open":                 "VIVARAN_DB_MAX_OPEN",
		"db.max_idle":                 "VIVARAN_DB_MAX_IDLE",
		"s3.region":                   "VIVARAN_S3_REGION",
		"s3.bucket":                   "VIVARAN_S3_BUCKET",
		"s3.endpoint":                 "VIVARAN_S3_ENDPOINT",
		"s3.access_key":               "VIVARAN_S3_ACCESS_KEY",
		"s3.secret_key":               "VIVARAN_S3_SECRET_KEY",
		"s3.max_file_size_mb":         "VIVARAN_S3_MAX_FILE_SIZE_MB",
		"log.level":                   "VIVARAN_LOG_LEVEL",
		"log.format":                  "VIVARAN_LOG_FORMAT",
		"cors.allowed_origins":        "VIVARAN_CORS_ALLOWED_ORIGINS",
		"extractor.provider":          "VIVARAN_EXTRACTOR_PROVIDER",
		"extractor.api_key":           "VIVARAN_EXTRACTOR_API_KEY",
		"extractor.default_model":     "VIVARAN_EXTRACTOR_DEFAULT_MODEL",
		"extractor.timeout_secs":      "VIVARAN_EXTRACTOR_TIMEOUT_SECS",
		"extractor.max_output_tokens": "VIVARAN_EXTRACTOR_MAX_OUTPUT_TOKENS",
		"transform.allow_overwrite":   "VIVARAN_TRANSFORM_ALLOW_OVERWRITE",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			MaxOpen:  v.GetInt("db.max_open"),
			MaxIdle:  v.GetInt("db.max_idle"),
		},
		S3: S3Config{
			Region:        v.GetString("s3.region"),
			Bucket:        v.GetString("s3.bucket"),
			Endpoint:      v.GetString("s3.endpoint"),
			AccessKey:     v.GetString("s3.access_key"),
			SecretKey:     v.GetString("s3.secret_key"),
			MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
		},
		Extractor: ExtractorConfig{
			Provider:        v.GetString("extractor.provider"),
			APIKey:          v.GetString("extractor.api_key"),
			DefaultModel:    v.GetString("extractor.default_model"),
			TimeoutSecs:     v.GetInt("extractor.timeout_secs"),
			MaxOutputTokens: v.GetInt("extractor.max_output_tokens"),
		},
		Transform: TransformConfig{
			AllowOverwrite: v.GetBool("transform.allow_overwrite"),
		},
	}

	return cfg, nil
}
