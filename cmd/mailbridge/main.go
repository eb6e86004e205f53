package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"mailbridge/internal/applescript"
	"mailbridge/internal/config"
	"mailbridge/internal/mail"
	"mailbridge/internal/tools"
)

const version = "0.1.0"

var (
	debugMode   = flag.Bool("d", false, "Enable debug mode")
	logFile     = flag.String("log-file", "", "Log file path (logs disabled by default)")
	configPath  = flag.String("config", "config.json", "Config file path")
	interactive = flag.Bool("i", false, "Run the interactive console instead of the MCP transport")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	// Initialize logger. Never log to stdout: it carries the MCP
	// protocol stream.
	logger := initLogger(*debugMode, cfg.LogFile)
	logger.Info().Msg("Mailbridge starting")

	client := mail.NewClient(applescript.Osascript{Path: cfg.OsascriptPath}, logger, cfg.SearchLimit)

	if *interactive {
		runConsole(logger, client)
		return
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "mailbridge", Version: version}, nil)
	tools.RegisterAll(server, client)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

func initLogger(debug bool, logFilePath string) zerolog.Logger {
	// Set log level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Configure output
	var output io.Writer
	if logFilePath != "" {
		// Log to file only
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		output = file
	} else {
		// No logging by default - use io.Discard
		output = io.Discard
	}

	// Create logger with timestamp
	return zerolog.New(output).With().Timestamp().Logger()
}
