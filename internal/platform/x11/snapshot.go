package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// output is one connected RandR output with its CRTC state.
type output struct {
	id      randr.Output
	name    string
	info    *randr.GetOutputInfoReply
	crtc    *randr.GetCrtcInfoReply
	primary bool
}

// snapshot is the RandR screen configuration at one point in time.
type snapshot struct {
	configTimestamp xproto.Timestamp
	outputs         []output
	modes           map[randr.Mode]randr.ModeInfo
}

func (c *Connection) snapshot() (*snapshot, error) {
	res, err := randr.GetScreenResources(c.Conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if p, err := randr.GetOutputPrimary(c.Conn, c.Root).Reply(); err == nil {
		primary = p.Output
	}

	snap := &snapshot{
		configTimestamp: res.ConfigTimestamp,
		modes:           make(map[randr.Mode]randr.ModeInfo, len(res.Modes)),
	}
	for _, mi := range res.Modes {
		snap.modes[randr.Mode(mi.Id)] = mi
	}

	for _, id := range res.Outputs {
		info, err := randr.GetOutputInfo(c.Conn, id, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("failed to get output info: %w", err)
		}
		if info.Connection != randr.ConnectionConnected {
			continue
		}
		out := output{
			id:      id,
			name:    string(info.Name),
			info:    info,
			primary: id == primary,
		}
		if info.Crtc != 0 {
			crtc, err := randr.GetCrtcInfo(c.Conn, info.Crtc, res.ConfigTimestamp).Reply()
			if err != nil {
				return nil, fmt.Errorf("failed to get crtc info for %s: %w", out.name, err)
			}
			out.crtc = crtc
		}
		snap.outputs = append(snap.outputs, out)
	}
	return snap, nil
}

func (s *snapshot) find(name string) (*output, error) {
	for i := range s.outputs {
		if s.outputs[i].name == name {
			return &s.outputs[i], nil
		}
	}
	return nil, fmt.Errorf("output %q is not connected", name)
}

// active reports whether the output currently drives a CRTC with a mode.
func (o *output) active() bool {
	return o.crtc != nil && o.crtc.Mode != 0 && o.crtc.Width > 0 && o.crtc.Height > 0
}

func (o *output) deviceInfo() platform.DeviceInfo {
	var flags uint32
	if o.active() {
		flags |= platform.StateAttachedToDesktop
	}
	if o.primary {
		flags |= platform.StatePrimaryDevice
	}
	desc := "RandR output"
	if o.info.MmWidth > 0 && o.info.MmHeight > 0 {
		desc = fmt.Sprintf("RandR output (%dx%d mm)", o.info.MmWidth, o.info.MmHeight)
	}
	return platform.DeviceInfo{Name: o.name, Description: desc, StateFlags: flags}
}

// modeFor returns the id of the output mode matching req, or false.
func (s *snapshot) modeFor(o *output, req platform.ModeRequest) (randr.Mode, bool) {
	for _, id := range o.info.Modes {
		mi, ok := s.modes[id]
		if !ok {
			continue
		}
		if int(mi.Width) == req.Width && int(mi.Height) == req.Height && refreshRate(mi) == req.Refresh {
			return id, true
		}
	}
	return 0, false
}

func (s *snapshot) rawMode(id randr.Mode) (model.RawMode, bool) {
	mi, ok := s.modes[id]
	if !ok {
		return model.RawMode{}, false
	}
	return model.RawMode{
		Width:   int(mi.Width),
		Height:  int(mi.Height),
		Refresh: refreshRate(mi),
	}, true
}

// refreshRate derives the vertical refresh in whole Hz from the mode timings.
func refreshRate(mi randr.ModeInfo) int {
	if mi.Htotal == 0 || mi.Vtotal == 0 {
		return 0
	}
	vtotal := float64(mi.Vtotal)
	if mi.ModeFlags&randr.ModeFlagDoubleScan != 0 {
		vtotal *= 2
	}
	if mi.ModeFlags&randr.ModeFlagInterlace != 0 {
		vtotal /= 2
	}
	return int(math.Round(float64(mi.DotClock) / (float64(mi.Htotal) * vtotal)))
}
