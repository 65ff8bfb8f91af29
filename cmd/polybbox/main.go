package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/annotation-tools/internal/config"
	"github.com/ironsheep/annotation-tools/internal/logging"
	"github.com/ironsheep/annotation-tools/internal/runner"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("polybbox %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("polybbox - convert polygon annotations to bounding-box tables")
			fmt.Println()
			fmt.Println("Usage: polybbox [input_dir] [output_file]")
			fmt.Println()
			fmt.Printf("  input_dir    Directory of JSON annotation documents (default: %s)\n", config.DefaultInputDir)
			fmt.Printf("  output_file  Tabular output path (default: %s)\n", config.DefaultOutput)
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  POLYBBOX_INPUT_DIR    Input directory (overridden by the first argument)")
			fmt.Println("  POLYBBOX_OUTPUT       Output file (overridden by the second argument)")
			fmt.Println("  POLYBBOX_FORMAT       Force output format: csv, tsv, jsonl, xlsx")
			fmt.Println("                        (otherwise inferred from the output extension)")
			fmt.Println("  POLYBBOX_LOG_LEVEL    debug, info, warn, error (default: info)")
			fmt.Println("  POLYBBOX_LOG_FILE     Mirror logs to a rotated file")
			return
		}
	}

	cfg := config.FromEnv()
	if len(os.Args) > 1 {
		cfg.InputDir = os.Args[1]
	}
	if len(os.Args) > 2 {
		cfg.Output = os.Args[2]
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFile)
	logger.Infof("polybbox %s: %s -> %s", Version, cfg.InputDir, cfg.Output)

	summary, err := runner.Run(cfg, logger)
	if err != nil {
		logger.Fatalf("conversion failed: %v", err)
	}

	if summary.OutputWritten {
		fmt.Printf("Conversion complete! Output saved to: %s\n", cfg.Output)
		fmt.Printf("Total bounding boxes: %d\n", len(summary.Records))
	} else {
		fmt.Println("No bounding boxes found to export")
	}
}
