package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the CLI's environment-driven configuration.
type Config struct {
	// LogLevel is the minimum slog level to emit ("debug", "info", "warn",
	// "error").
	LogLevel string

	// OutputEncoding is read from SAFETXE_OUTPUT_ENCODING (default "hex").
	// No subcommand consults it: argify always prints 0x-prefixed hex and
	// encrypt writes the blob as raw bytes.
	OutputEncoding string

	// RecipientsFile is read from SAFETXE_RECIPIENTS_FILE (default empty).
	// No subcommand consults it: encrypt takes its recipients only from the
	// -recipients flag and fails when that flag is omitted.
	RecipientsFile string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded if present (dev convenience).
func Load() (*Config, error) {
	_ = godotenv.Load() // no-op if .env absent (production uses real env vars)
	cfg := &Config{
		LogLevel:       getEnv("SAFETXE_LOG_LEVEL", "info"),
		OutputEncoding: getEnv("SAFETXE_OUTPUT_ENCODING", "hex"),
		RecipientsFile: getEnv("SAFETXE_RECIPIENTS_FILE", ""),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
