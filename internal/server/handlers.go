package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/displaymode/internal/display"
	"github.com/mj1618/displaymode/internal/output"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_displays",
			mcp.WithDescription("List the active display devices attached to the desktop"),
		),
		s.handleListDisplays,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_modes",
			mcp.WithDescription("List the resolutions a display supports, each with its refresh rates (highest first)"),
			mcp.WithString("device", mcp.Description("Device name (default: configured device, else the first active display)")),
		),
		s.handleListModes,
	)

	s.mcp.AddTool(
		mcp.NewTool("current_mode",
			mcp.WithDescription("Show the resolution and refresh rate a display is currently driven at"),
			mcp.WithString("device", mcp.Description("Device name (default: configured device, else the first active display)")),
		),
		s.handleCurrentMode,
	)

	s.mcp.AddTool(
		mcp.NewTool("apply_mode",
			mcp.WithDescription("Switch a display to a resolution and refresh rate. The mode must be one list_modes reports."),
			mcp.WithString("device", mcp.Description("Device name (default: configured device, else the first active display)")),
			mcp.WithNumber("width", mcp.Required(), mcp.Description("Horizontal resolution in pixels")),
			mcp.WithNumber("height", mcp.Required(), mcp.Description("Vertical resolution in pixels")),
			mcp.WithNumber("refresh", mcp.Description("Refresh rate in Hz (default: highest for the resolution)")),
			mcp.WithBoolean("dry_run", mcp.Description("Only ask the OS whether the mode would work")),
		),
		s.handleApplyMode,
	)
}

func (s *Server) handleListDisplays(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.serviceMu.Lock()
	defer s.serviceMu.Unlock()

	devices, err := s.svc.ListActiveDevices()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output.YAMLString(output.DevicesResult{
		Backend:  s.svc.Backend(),
		Displays: devices,
	})), nil
}

func (s *Server) handleListModes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.serviceMu.Lock()
	defer s.serviceMu.Unlock()

	device, err := s.svc.ResolveDevice(StringParam(params, "device", s.device))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	catalog, err := s.svc.ListModes(device)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := output.ModesResult{Device: device, Modes: catalog.Entries()}
	if current, err := s.svc.CurrentMode(device); err == nil {
		result.Current = &current
	} else {
		s.logger.Debug().Err(err).Str("device", device).Msg("current mode unavailable")
	}
	return mcp.NewToolResultText(output.YAMLString(result)), nil
}

func (s *Server) handleCurrentMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.serviceMu.Lock()
	defer s.serviceMu.Unlock()

	device, err := s.svc.ResolveDevice(StringParam(params, "device", s.device))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := s.svc.CurrentMode(device)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output.YAMLString(output.CurrentResult{Device: device, Mode: mode})), nil
}

func (s *Server) handleApplyMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	width := IntParam(params, "width", 0)
	height := IntParam(params, "height", 0)
	refresh := IntParam(params, "refresh", 0)
	dryRun := BoolParam(params, "dry_run", false)

	s.serviceMu.Lock()
	defer s.serviceMu.Unlock()

	device, err := s.svc.ResolveDevice(StringParam(params, "device", s.device))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := s.svc.ResolveMode(device, width, height, refresh)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := s.svc.ApplyMode(device, mode, display.ApplyOptions{DryRun: dryRun})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !result.OK {
		return mcp.NewToolResultError(output.YAMLString(result)), nil
	}
	return mcp.NewToolResultText(output.YAMLString(result)), nil
}
