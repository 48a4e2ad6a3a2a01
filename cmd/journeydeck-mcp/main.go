package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "journeydeck/internal/adapters/mcp"
	"journeydeck/internal/config"
	"journeydeck/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to a journeydeck.yaml config file")
	flag.Parse()

	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = loader.LoadFromFile(*configFlag)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		log.Fatalf("journeydeck-mcp: %v", err)
	}

	// stdout carries the protocol; logs stay in the file
	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		log.Fatalf("journeydeck-mcp: init logger: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"journeydeck-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer)
	mcpadapter.RegisterNavigateTools(mcpServer, mcpadapter.NewNavigator())

	logger.Info("serving mcp on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("journeydeck-mcp: %v", err)
	}
}
