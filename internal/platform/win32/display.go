//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// Win32Display implements the platform display interfaces with user32.
type Win32Display struct{}

// NewDisplay creates a Windows display backend.
func NewDisplay() *Win32Display {
	return &Win32Display{}
}

// EnumDevice reads the device record at index. Windows reports the end of the
// list and genuine failures the same way, so a FALSE return is exhaustion.
func (d *Win32Display) EnumDevice(index int) (platform.DeviceInfo, bool, error) {
	var dd displayDevice
	if !enumDisplayDevices(uint32(index), &dd) {
		return platform.DeviceInfo{}, false, nil
	}
	return platform.DeviceInfo{
		Name:        windows.UTF16ToString(dd.deviceName[:]),
		Description: windows.UTF16ToString(dd.deviceString[:]),
		StateFlags:  dd.stateFlags,
	}, true, nil
}

// EnumMode reads mode record index of device. A FALSE return at index 0
// means the device name was rejected, which is reported as an error.
func (d *Win32Display) EnumMode(device string, index int) (model.RawMode, bool, error) {
	name, err := devicePtr(device)
	if err != nil {
		return model.RawMode{}, false, err
	}
	var dm devMode
	if !enumDisplaySettings(name, uint32(index), &dm) {
		if index == 0 {
			return model.RawMode{}, false, fmt.Errorf("EnumDisplaySettingsW(%s): device has no readable modes", device)
		}
		return model.RawMode{}, false, nil
	}
	return rawMode(&dm), true, nil
}

func (d *Win32Display) CurrentMode(device string) (model.RawMode, error) {
	name, err := devicePtr(device)
	if err != nil {
		return model.RawMode{}, err
	}
	var dm devMode
	if !enumDisplaySettings(name, enumCurrentSettings, &dm) {
		return model.RawMode{}, fmt.Errorf("EnumDisplaySettingsW(%s, ENUM_CURRENT_SETTINGS) failed", device)
	}
	return rawMode(&dm), nil
}

// ChangeMode submits req with CDS_UPDATEREGISTRY, or CDS_TEST for test
// requests, and returns the DISP_CHANGE code unchanged.
func (d *Win32Display) ChangeMode(req platform.ModeRequest) (platform.StatusCode, error) {
	name, err := devicePtr(req.Device)
	if err != nil {
		return 0, err
	}
	dm := devMode{
		fields:           dmPelsWidth | dmPelsHeight | dmDisplayFrequency,
		pelsWidth:        uint32(req.Width),
		pelsHeight:       uint32(req.Height),
		displayFrequency: uint32(req.Refresh),
	}
	flags := uint32(cdsUpdateRegistry)
	if req.Test {
		flags = cdsTest
	}
	return platform.StatusCode(changeDisplaySettingsEx(name, &dm, flags)), nil
}

func devicePtr(device string) (*uint16, error) {
	if err := platform.CheckDeviceName(device); err != nil {
		return nil, err
	}
	p, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return nil, fmt.Errorf("invalid device name %q: %w", device, err)
	}
	return p, nil
}

func rawMode(dm *devMode) model.RawMode {
	return model.RawMode{
		Width:        int(dm.pelsWidth),
		Height:       int(dm.pelsHeight),
		Refresh:      int(dm.displayFrequency),
		BitsPerPixel: int(dm.bitsPerPel),
	}
}
