package platform

import (
	"fmt"
	"unicode/utf16"
)

// Fixed field sizes of the native device records, in UTF-16 code units
// including the terminating NUL.
const (
	MaxDeviceNameLen   = 32
	MaxDeviceStringLen = 128
)

// Device state flags as reported by the OS.
const (
	StateAttachedToDesktop uint32 = 0x00000001
	StatePrimaryDevice     uint32 = 0x00000004
)

// DeviceInfo is one record of the OS device enumeration.
type DeviceInfo struct {
	Name        string
	Description string
	StateFlags  uint32
}

// Active reports whether the device is attached to the desktop.
func (d DeviceInfo) Active() bool {
	return d.StateFlags&StateAttachedToDesktop != 0
}

// Primary reports whether the device hosts the primary desktop.
func (d DeviceInfo) Primary() bool {
	return d.StateFlags&StatePrimaryDevice != 0
}

// ModeRequest asks a backend to drive a device at an exact mode. Only width,
// height and refresh rate are set; orientation, colour depth and position are
// left untouched.
type ModeRequest struct {
	Device  string
	Width   int
	Height  int
	Refresh int
	// Test validates the request without changing the output.
	Test bool
}

// StatusCode is the raw result of a mode change.
type StatusCode int

// Status codes understood by the display layer. Backends translate their own
// failure reports into these values; anything else is passed through raw.
const (
	StatusSuccess         StatusCode = 0
	StatusRestartRequired StatusCode = -1
	StatusBadMode         StatusCode = -2
	StatusNoPrivilege     StatusCode = -5
	StatusDriverRejected  StatusCode = -6
)

// CheckDeviceName verifies that name fits the native device-name field.
func CheckDeviceName(name string) error {
	if n := len(utf16.Encode([]rune(name))); n >= MaxDeviceNameLen {
		return fmt.Errorf("device name %q is %d UTF-16 units long; the limit is %d", name, n, MaxDeviceNameLen-1)
	}
	return nil
}
