package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Render   RenderConfig
	Vision   VisionConfig
	Ingest   IngestConfig
	Queue    QueueConfig
	Export   ExportConfig
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

// RenderConfig holds page-rendering configuration for the vision path.
type RenderConfig struct {
	Pdftoppm   string
	DPI        int
	MaxPages   int
	ScratchDir string
}

// VisionConfig holds vision-model configuration. Provider selects the
// implementation; the pipeline runs without any credential and simply
// reports vision as unavailable.
type VisionConfig struct {
	Provider    string
	OpenAIModel string
	OpenAIKey   string
	GeminiModel string
	GeminiKey   string
	Temperature float32
	Timeout     time.Duration
}

// IngestConfig holds filesystem ingestion configuration.
type IngestConfig struct {
	WatchDirs     string
	WatchDebounce time.Duration
	InitialScan   bool
}

// QueueConfig holds worker-queue configuration.
type QueueConfig struct {
	Workers        int
	Size           int
	ProcessTimeout time.Duration
}

// ExportConfig holds report-export configuration.
type ExportConfig struct {
	ContainerGrams float64
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
		Render: RenderConfig{
			Pdftoppm:   getEnv("PDFTOPPM_BIN", "pdftoppm"),
			DPI:        getEnvAsInt("RENDER_DPI", 300),
			MaxPages:   getEnvAsInt("RENDER_MAX_PAGES", 5),
			ScratchDir: getEnv("SCRATCH_DIR", ""),
		},
		Vision: VisionConfig{
			Provider:    getEnv("VISION_PROVIDER", "openai"),
			OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			GeminiKey:   getEnv("GEMINI_API_KEY", ""),
			Temperature: getEnvAsFloat32("VISION_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("VISION_TIMEOUT", 2*time.Minute),
		},
		Ingest: IngestConfig{
			WatchDirs:     getEnv("WATCH_DIRS", ""),
			WatchDebounce: getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
			InitialScan:   getEnvAsBool("WATCH_INITIAL_SCAN", true),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			Size:           getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("PROCESS_TIMEOUT", 5*time.Minute),
		},
		Export: ExportConfig{
			ContainerGrams: getEnvAsFloat64("EXPORT_CONTAINER_GRAMS", 100),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Render.MaxPages <= 0 {
		return NewAppError("CONFIG_ERROR", "RENDER_MAX_PAGES must be positive", ErrInvalidInput)
	}
	switch c.Vision.Provider {
	case "openai", "gemini":
	default:
		return NewAppError("CONFIG_ERROR", "VISION_PROVIDER must be openai or gemini", ErrInvalidInput)
	}
	return nil
}
