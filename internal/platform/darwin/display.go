//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include "cgdisplay.h"
*/
import "C"
import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// namePrefix prefixes the CGDirectDisplayID in device names.
const namePrefix = "display"

// maxModes bounds the mode list copied from CoreGraphics.
const maxModes = 1024

// builtinRefresh is reported for panels whose mode says 0 Hz.
const builtinRefresh = 60

// cgMode is one entry of a display's CoreGraphics mode list.
type cgMode struct {
	index int
	raw   model.RawMode
}

// DarwinDisplay implements the platform display interfaces for macOS.
type DarwinDisplay struct {
	mu sync.Mutex
	// modes is the mode list of one display, read when enumeration starts
	// at index 0.
	modesFor string
	modes    []cgMode
}

// NewDisplay creates a new macOS display backend.
func NewDisplay() *DarwinDisplay {
	return &DarwinDisplay{}
}

// EnumDevice returns the active display at index in CoreGraphics order.
func (d *DarwinDisplay) EnumDevice(index int) (platform.DeviceInfo, bool, error) {
	var entries [C.CG_MAX_DISPLAYS]C.CGDisplayEntry
	n := int(C.cg_active_displays(&entries[0]))
	if n < 0 {
		return platform.DeviceInfo{}, false, fmt.Errorf("CGGetActiveDisplayList failed")
	}
	if index < 0 || index >= n {
		return platform.DeviceInfo{}, false, nil
	}

	e := entries[index]
	info := platform.DeviceInfo{
		Name:        deviceName(uint32(e.id)),
		Description: "External display",
		StateFlags:  platform.StateAttachedToDesktop,
	}
	if e.builtin != 0 {
		info.Description = "Built-in display"
	}
	if e.main != 0 {
		info.StateFlags |= platform.StatePrimaryDevice
	}
	return info, true, nil
}

// EnumMode returns the mode at index of device's usable mode list.
func (d *DarwinDisplay) EnumMode(device string, index int) (model.RawMode, bool, error) {
	id, err := parseDeviceName(device)
	if err != nil {
		return model.RawMode{}, false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if index == 0 || d.modesFor != device {
		modes, err := listModes(id)
		if err != nil {
			return model.RawMode{}, false, err
		}
		d.modes = modes
		d.modesFor = device
	}
	if index < 0 || index >= len(d.modes) {
		return model.RawMode{}, false, nil
	}
	return d.modes[index].raw, true, nil
}

// CurrentMode returns the mode device is driven at.
func (d *DarwinDisplay) CurrentMode(device string) (model.RawMode, error) {
	id, err := parseDeviceName(device)
	if err != nil {
		return model.RawMode{}, err
	}
	var info C.CGModeInfo
	if C.cg_current_mode(C.uint32_t(id), &info) != 0 {
		return model.RawMode{}, fmt.Errorf("no current mode for %s", device)
	}
	return rawMode(info), nil
}

// ChangeMode switches device to the first usable mode matching req. Test
// requests stop after the mode lookup.
func (d *DarwinDisplay) ChangeMode(req platform.ModeRequest) (platform.StatusCode, error) {
	id, err := parseDeviceName(req.Device)
	if err != nil {
		return platform.StatusDriverRejected, nil
	}
	modes, err := listModes(id)
	if err != nil {
		return 0, err
	}

	index := -1
	for _, m := range modes {
		if m.raw.Width == req.Width && m.raw.Height == req.Height && m.raw.Refresh == req.Refresh {
			index = m.index
			break
		}
	}
	if index < 0 {
		return platform.StatusBadMode, nil
	}
	if req.Test {
		return platform.StatusSuccess, nil
	}
	return cgStatus(int(C.cg_set_mode(C.uint32_t(id), C.int(index)))), nil
}

func listModes(id uint32) ([]cgMode, error) {
	var infos [maxModes]C.CGModeInfo
	n := int(C.cg_list_modes(C.uint32_t(id), &infos[0], maxModes))
	if n < 0 {
		return nil, fmt.Errorf("CGDisplayCopyAllDisplayModes failed for %s", deviceName(id))
	}
	n = min(n, maxModes)

	modes := make([]cgMode, 0, n)
	for i := 0; i < n; i++ {
		if infos[i].usable == 0 {
			continue
		}
		modes = append(modes, cgMode{index: i, raw: rawMode(infos[i])})
	}
	return modes, nil
}

func rawMode(info C.CGModeInfo) model.RawMode {
	refresh := int(math.Round(float64(info.refresh)))
	if refresh == 0 {
		refresh = builtinRefresh
	}
	return model.RawMode{
		Width:        int(info.width),
		Height:       int(info.height),
		Refresh:      refresh,
		BitsPerPixel: 32,
	}
}

func deviceName(id uint32) string {
	return namePrefix + strconv.FormatUint(uint64(id), 10)
}

func parseDeviceName(name string) (uint32, error) {
	rest, ok := strings.CutPrefix(name, namePrefix)
	if !ok {
		return 0, fmt.Errorf("unknown display %q", name)
	}
	id, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown display %q", name)
	}
	return uint32(id), nil
}
