// Package config resolves runtime settings from the environment and CLI
// arguments.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when neither environment nor CLI arguments say otherwise.
const (
	DefaultInputDir = "annotations"
	DefaultOutput   = "visual_layer_annotations.csv"
)

// Config holds the resolved settings for one conversion run.
type Config struct {
	// InputDir is the directory scanned for *.json annotation documents.
	InputDir string

	// Output is the path of the tabular file to write.
	Output string

	// Format forces an output format by name ("csv", "tsv", "jsonl",
	// "xlsx"). Empty means: infer from the Output extension.
	Format string

	// LogLevel is a logrus level name. Empty means info.
	LogLevel string

	// LogFile, when set, mirrors log output to a rotated file.
	LogFile string
}

// FromEnv builds a Config from environment variables, after loading a .env
// file if one exists in the working directory. A missing .env is not an
// error; explicit environment variables always win over defaults.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		InputDir: envOr("POLYBBOX_INPUT_DIR", DefaultInputDir),
		Output:   envOr("POLYBBOX_OUTPUT", DefaultOutput),
		Format:   os.Getenv("POLYBBOX_FORMAT"),
		LogLevel: os.Getenv("POLYBBOX_LOG_LEVEL"),
		LogFile:  os.Getenv("POLYBBOX_LOG_FILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
