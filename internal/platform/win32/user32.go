//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/displaymode/internal/platform"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procEnumDisplayDevicesW      = moduser32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsW     = moduser32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettingsExW = moduser32.NewProc("ChangeDisplaySettingsExW")
)

const (
	enumCurrentSettings = 0xFFFFFFFF

	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFrequency = 0x00400000

	cdsUpdateRegistry = 0x00000001
	cdsTest           = 0x00000002
)

// displayDevice mirrors DISPLAY_DEVICEW.
type displayDevice struct {
	cb           uint32
	deviceName   [platform.MaxDeviceNameLen]uint16
	deviceString [platform.MaxDeviceStringLen]uint16
	stateFlags   uint32
	deviceID     [128]uint16
	deviceKey    [128]uint16
}

// devMode mirrors the display variant of DEVMODEW, including the trailing
// ICM and panning fields so that dmSize equals sizeof(DEVMODEW).
type devMode struct {
	deviceName         [platform.MaxDeviceNameLen]uint16
	specVersion        uint16
	driverVersion      uint16
	size               uint16
	driverExtra        uint16
	fields             uint32
	positionX          int32
	positionY          int32
	displayOrientation uint32
	displayFixedOutput uint32
	color              int16
	duplex             int16
	yResolution        int16
	ttOption           int16
	collate            int16
	formName           [32]uint16
	logPixels          uint16
	bitsPerPel         uint32
	pelsWidth          uint32
	pelsHeight         uint32
	displayFlags       uint32
	displayFrequency   uint32
	icmMethod          uint32
	icmIntent          uint32
	mediaType          uint32
	ditherType         uint32
	reserved1          uint32
	reserved2          uint32
	panningWidth       uint32
	panningHeight      uint32
}

func enumDisplayDevices(index uint32, dd *displayDevice) bool {
	dd.cb = uint32(unsafe.Sizeof(*dd))
	r, _, _ := procEnumDisplayDevicesW.Call(0, uintptr(index), uintptr(unsafe.Pointer(dd)), 0)
	return r != 0
}

func enumDisplaySettings(device *uint16, index uint32, dm *devMode) bool {
	dm.size = uint16(unsafe.Sizeof(*dm))
	r, _, _ := procEnumDisplaySettingsW.Call(uintptr(unsafe.Pointer(device)), uintptr(index), uintptr(unsafe.Pointer(dm)))
	return r != 0
}

func changeDisplaySettingsEx(device *uint16, dm *devMode, flags uint32) int32 {
	dm.size = uint16(unsafe.Sizeof(*dm))
	r, _, _ := procChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(unsafe.Pointer(dm)),
		0,
		uintptr(flags),
		0,
	)
	return int32(r)
}
