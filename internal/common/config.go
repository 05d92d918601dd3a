package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Queue     QueueConfig
	Pipeline  PipelineConfig
	Providers ProvidersConfig
	Upload    UploadConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// QueueConfig holds task queue configuration
type QueueConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Stream        string
	Group         string
	Consumer      string
	Workers       int
	TaskTimeout   time.Duration
	MaxJobRetries int
	RetryBackoff  time.Duration
}

// PipelineConfig holds extraction pipeline tuning
type PipelineConfig struct {
	BatchSize          int
	MaxConcurrentCalls int
	MaxRetries         int
	RetryDelay         time.Duration
	RequestTimeout     time.Duration
	DirectTextMinChars int
	OCRScale           float64
	CropScale          float64
}

// ProvidersConfig holds per-provider API credentials
type ProvidersConfig struct {
	OpenAIKey     string
	DeepInfraKey  string
	OpenRouterKey string
	Default       string
}

// UploadConfig holds PDF upload limits and storage paths
type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
	MaxPages     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Queue: QueueConfig{
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			Stream:        getEnv("QUEUE_STREAM", "examscan:jobs"),
			Group:         getEnv("QUEUE_GROUP", "examscan-workers"),
			Consumer:      getEnv("QUEUE_CONSUMER", hostnameOr("worker-1")),
			Workers:       getEnvAsInt("QUEUE_WORKERS", 2),
			TaskTimeout:   getEnvAsDuration("QUEUE_TASK_TIMEOUT", 30*time.Minute),
			MaxJobRetries: getEnvAsInt("QUEUE_MAX_JOB_RETRIES", 2),
			RetryBackoff:  getEnvAsDuration("QUEUE_RETRY_BACKOFF", time.Minute),
		},
		Pipeline: PipelineConfig{
			BatchSize:          getEnvAsInt("PIPELINE_BATCH_SIZE", 10),
			MaxConcurrentCalls: getEnvAsInt("PIPELINE_MAX_CONCURRENT", 5),
			MaxRetries:         getEnvAsInt("PIPELINE_MAX_RETRIES", 3),
			RetryDelay:         getEnvAsDuration("PIPELINE_RETRY_DELAY", 2*time.Second),
			RequestTimeout:     getEnvAsDuration("PIPELINE_REQUEST_TIMEOUT", 120*time.Second),
			DirectTextMinChars: getEnvAsInt("PIPELINE_DIRECT_TEXT_MIN_CHARS", 200),
			OCRScale:           getEnvAsFloat64("PIPELINE_OCR_SCALE", 3.0),
			CropScale:          getEnvAsFloat64("PIPELINE_CROP_SCALE", 2.0),
		},
		Providers: ProvidersConfig{
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			DeepInfraKey:  getEnv("DEEPINFRA_API_KEY", ""),
			OpenRouterKey: getEnv("OPENROUTER_API_KEY", ""),
			Default:       getEnv("DEFAULT_PROVIDER", "hybrid"),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "./uploads"),
			MaxSizeBytes: getEnvAsInt64("UPLOAD_MAX_SIZE_BYTES", 100<<20),
			MaxPages:     getEnvAsInt("UPLOAD_MAX_PAGES", 200),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func hostnameOr(defaultValue string) string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Providers.OpenAIKey == "" && c.Providers.DeepInfraKey == "" && c.Providers.OpenRouterKey == "" {
		return NewAppError("CONFIG_ERROR", "at least one provider API key is required", ErrInvalidInput)
	}
	if c.Pipeline.BatchSize < 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
