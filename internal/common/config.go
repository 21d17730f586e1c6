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
	OCR      OCRConfig
	Pipeline PipelineConfig
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

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm   string
	Tesseract  string
	Language   string
	DPI        int
	MaxPages   int
	StaleAfter time.Duration // ocr_running older than this is swept to ocr_failed
}

// PipelineConfig holds extraction and notice configuration
type PipelineConfig struct {
	ProfileDir     string // directory of YAML mapping profiles
	CaseDataDir    string // root for per-case artifacts (OCR sidecars, notices)
	SenderName     string // "From" identity on generated notices
	IntakeDir      string // optional watched drop directory, "" disables the watcher
	DefaultProfile string // profile for post-OCR reprocessing, "" disables it
	ProbePages     int    // PDF pages sampled by the text-layer probe, 0 = all
	Workers        int
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
		OCR: OCRConfig{
			Pdftoppm:   getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract:  getEnv("OCR_TESSERACT", "tesseract"),
			Language:   getEnv("OCR_LANG", "deu+eng"),
			DPI:        getEnvAsInt("OCR_DPI", 300),
			MaxPages:   getEnvAsInt("OCR_MAX_PAGES", 0),
			StaleAfter: getEnvAsDuration("OCR_STALE_AFTER", 30*time.Minute),
		},
		Pipeline: PipelineConfig{
			ProfileDir:     getEnv("PROFILE_DIR", "./profiles"),
			CaseDataDir:    getEnv("CASE_DATA_DIR", "./data/cases"),
			SenderName:     getEnv("NOTICE_SENDER", "Insolvency Administrator"),
			IntakeDir:      getEnv("INTAKE_DIR", ""),
			DefaultProfile: getEnv("DEFAULT_PROFILE", "generic_statement"),
			ProbePages:     getEnvAsInt("PDF_PROBE_PAGES", 3),
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
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
	if c.Pipeline.CaseDataDir == "" {
		return NewAppError("CONFIG_ERROR", "CASE_DATA_DIR is required", ErrInvalidInput)
	}
	return nil
}
