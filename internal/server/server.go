// Package server exposes the display service as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mj1618/displaymode/internal/display"
	"github.com/mj1618/displaymode/internal/model"
)

// Service is the display facade the tools call into.
type Service interface {
	Backend() string
	ListActiveDevices() ([]model.Display, error)
	ListModes(device string) (model.ModeCatalog, error)
	CurrentMode(device string) (model.Mode, error)
	ResolveDevice(preferred string) (string, error)
	ResolveMode(device string, width, height, refresh int) (model.Mode, error)
	ApplyMode(device string, mode model.Mode, opts display.ApplyOptions) (model.ApplyResult, error)
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	// Device is used by tools called without a device argument.
	Device  string
	Version string
}

// Server wraps the MCP server with the display service. Backend access is
// serialised: one OS call at a time.
type Server struct {
	svc       Service
	device    string
	serviceMu sync.Mutex
	mcp       *mcpserver.MCPServer
	logger    zerolog.Logger
}

// New creates a server with all display tools registered.
func New(svc Service, cfg Config, logger zerolog.Logger) *Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		svc:    svc,
		device: cfg.Device,
		logger: logger.With().Str("component", "mcp").Logger(),
	}
	s.mcp = mcpserver.NewMCPServer(
		"displaymode",
		version,
	)
	s.registerTools()
	return s
}

// Serve blocks serving the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.logger.Info().Str("transport", cfg.Transport).Str("backend", s.svc.Backend()).Msg("starting MCP server")
	switch cfg.Transport {
	case "stdio", "":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}
