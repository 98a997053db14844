package platform

import "github.com/mj1618/displaymode/internal/model"

// DeviceEnumerator walks the OS display device list one index at a time.
type DeviceEnumerator interface {
	// EnumDevice returns the device at index. ok is false once the index is
	// past the last device; err reports a failure that is not exhaustion.
	EnumDevice(index int) (info DeviceInfo, ok bool, err error)
}

// ModeEnumerator walks the mode table of one device one index at a time.
type ModeEnumerator interface {
	// EnumMode returns the mode record at index for device. ok is false once
	// the index is past the last mode.
	EnumMode(device string, index int) (mode model.RawMode, ok bool, err error)

	// CurrentMode returns the mode the device is driven at right now.
	CurrentMode(device string) (model.RawMode, error)
}

// ModeChanger submits mode change requests.
type ModeChanger interface {
	// ChangeMode applies req and returns the raw OS status code. err is only
	// set when the request could not be submitted at all.
	ChangeMode(req ModeRequest) (StatusCode, error)
}
