package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/logging"
	"github.com/mj1618/displaymode/internal/server"
	"github.com/mj1618/displaymode/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the display tools",
	Long: `Start a Model Context Protocol (MCP) server so agents can list displays
and modes and switch modes.

Tools: list_displays, list_modes, current_mode, apply_mode.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  displaymode serve
  displaymode serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	Annotations: map[string]string{
		annotationElevate: "true",
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	scfg := server.Config{
		Transport: transport,
		Port:      port,
		Device:    currentConfig().Device,
		Version:   version.Version,
	}
	return server.New(svc, scfg, *logging.Logger()).Serve(scfg)
}
