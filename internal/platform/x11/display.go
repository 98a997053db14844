package x11

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// X11Display implements the platform display interfaces over RandR.
//
// Enumeration at index 0 takes a fresh snapshot of the screen resources;
// later indices read from it, so one walk sees a consistent configuration.
type X11Display struct {
	conn *Connection

	mu      sync.Mutex
	devices *snapshot
	modes   *snapshot
}

// NewDisplay creates an X11 display backend over conn.
func NewDisplay(conn *Connection) *X11Display {
	return &X11Display{conn: conn}
}

func (d *X11Display) EnumDevice(index int) (platform.DeviceInfo, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index == 0 || d.devices == nil {
		snap, err := d.conn.snapshot()
		if err != nil {
			return platform.DeviceInfo{}, false, err
		}
		d.devices = snap
	}
	if index < 0 || index >= len(d.devices.outputs) {
		return platform.DeviceInfo{}, false, nil
	}
	return d.devices.outputs[index].deviceInfo(), true, nil
}

func (d *X11Display) EnumMode(device string, index int) (model.RawMode, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index == 0 || d.modes == nil {
		snap, err := d.conn.snapshot()
		if err != nil {
			return model.RawMode{}, false, err
		}
		d.modes = snap
	}
	out, err := d.modes.find(device)
	if err != nil {
		return model.RawMode{}, false, err
	}
	if index < 0 || index >= len(out.info.Modes) {
		return model.RawMode{}, false, nil
	}
	// Modes missing from the resource table come back zero-sized and are
	// dropped by the catalog builder.
	raw, _ := d.modes.rawMode(out.info.Modes[index])
	return raw, true, nil
}

func (d *X11Display) CurrentMode(device string) (model.RawMode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap, err := d.conn.snapshot()
	if err != nil {
		return model.RawMode{}, err
	}
	out, err := snap.find(device)
	if err != nil {
		return model.RawMode{}, err
	}
	if !out.active() {
		return model.RawMode{}, fmt.Errorf("output %s is not driving a crtc", device)
	}
	raw, ok := snap.rawMode(out.crtc.Mode)
	if !ok {
		return model.RawMode{}, fmt.Errorf("output %s: current mode %d not in resource table", device, out.crtc.Mode)
	}
	return raw, nil
}

// ChangeMode reprograms the output's CRTC with the matching mode, keeping
// its position, rotation and output set.
func (d *X11Display) ChangeMode(req platform.ModeRequest) (platform.StatusCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap, err := d.conn.snapshot()
	if err != nil {
		return 0, err
	}
	out, err := snap.find(req.Device)
	if err != nil {
		return 0, err
	}
	if !out.active() {
		return platform.StatusDriverRejected, nil
	}
	mode, ok := snap.modeFor(out, req)
	if !ok {
		return platform.StatusBadMode, nil
	}
	if req.Test {
		return platform.StatusSuccess, nil
	}

	reply, err := randr.SetCrtcConfig(d.conn.Conn, out.info.Crtc, xproto.TimeCurrentTime, snap.configTimestamp,
		out.crtc.X, out.crtc.Y, mode, out.crtc.Rotation, out.crtc.Outputs).Reply()
	if err != nil {
		var accessErr xproto.AccessError
		if errors.As(err, &accessErr) {
			return platform.StatusNoPrivilege, nil
		}
		return 0, fmt.Errorf("SetCrtcConfig(%s): %w", req.Device, err)
	}
	return setConfigStatus(reply.Status), nil
}

// setConfigStatus maps a RandR SetConfig reply status onto the status table.
func setConfigStatus(status byte) platform.StatusCode {
	switch status {
	case randr.SetConfigSuccess:
		return platform.StatusSuccess
	case randr.SetConfigInvalidConfigTime, randr.SetConfigInvalidTime:
		return platform.StatusRestartRequired
	case randr.SetConfigFailed:
		return platform.StatusDriverRejected
	default:
		return platform.StatusCode(status)
	}
}
