// Cookbook — a terminal recipe manager backed by a REST API.
//
// Usage:
//
//	cookbook [-base-url URL] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"cookbook/internal/api"
	"cookbook/internal/config"
	"cookbook/internal/images"
	"cookbook/internal/logger"
	"cookbook/internal/ui"
)

func main() {
	baseURL := flag.String("base-url", "", "recipe API base URL (overrides "+config.EnvBaseURL+")")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".cookbook-logs/cookbook.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libraries occasionally write to the default log
	// package; keep that off the alternate screen too.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	base, err := config.BaseURL(*baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Info("using API at %s", base)

	// Wire dependencies.
	loader := images.NewLoader(log)
	client := api.NewClient(base, loader, log)
	app := ui.NewApp(client, client, log, base)

	// Bubble Tea owns the terminal — blocks until quit.
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("ui: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
