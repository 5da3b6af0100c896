package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/rcypher/bidsort/internal/config"
	"github.com/rcypher/bidsort/internal/menu"
	"github.com/rcypher/bidsort/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/bidsort.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting bidsort",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg := loadConfig(*configPath, logger)

	// An optional positional argument overrides the configured input path
	if flag.NArg() > 0 {
		cfg.Input.Path = flag.Arg(0)
	}

	logger.Info("configuration loaded",
		"input", cfg.Input.Path,
		"encoding", cfg.Input.Encoding,
	)

	runner := menu.New(cfg.Input, logger, os.Stdin, os.Stdout)
	if err := runner.Run(); err != nil {
		logger.Error("menu loop failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file, falling back to pure defaults when the
// file does not exist. A file that exists but fails to parse or validate is
// still fatal: a broken config should not be silently replaced.
func loadConfig(path string, logger *slog.Logger) *config.Config {
	cfg, err := config.LoadAndValidate(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("no config file, using defaults", "path", path)
			return config.Default()
		}
		logger.Error("failed to load config", "path", path, "error", err)
		os.Exit(1)
	}
	return cfg
}
