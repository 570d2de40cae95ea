// Command pixed is a terminal pixel-art editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/config"
	"github.com/gogpu/pixed/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "pixed.toml", "configuration file")
		grid       = flag.Int("grid", 0, "square grid size in cells (overrides config)")
		cell       = flag.Int("cell", 0, "cell size, the zoom level (overrides config)")
		history    = flag.Int("history", 0, "history limit (overrides config)")
		logFile    = flag.String("log", "", "log file (overrides config)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *grid > 0 {
		cfg.Grid = config.Grid{Width: *grid, Height: *grid}
	}
	if *cell > 0 {
		cfg.CellSize = *cell
	}
	if *history > 0 {
		cfg.HistoryLimit = *history
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	opts, err := cfg.SessionOptions()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	palette, err := cfg.PaletteColors()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	session, err := pixed.NewSession(opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	if err := tui.Run(session, palette); err != nil {
		log.Fatalf("pixed: %v", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging sends library logs to the configured file. The terminal
// belongs to the UI, so without a file logs are discarded.
func setupLogging(cfg config.Config) (func(), error) {
	if cfg.Log.File == "" {
		return func() {}, nil
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Log.File, err)
	}
	pixed.SetLogger(newLogger(f, level))
	return func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
