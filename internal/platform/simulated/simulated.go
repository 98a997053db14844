// Package simulated provides an in-memory display backend. It backs the test
// suites and lets the tool run on machines without a supported windowing
// system (--backend simulated).
package simulated

import (
	"fmt"
	"sync"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// Device is one simulated display output.
type Device struct {
	Info    platform.DeviceInfo
	Modes   []model.RawMode
	Current model.RawMode
}

// Backend implements the platform enumerator and changer interfaces over a
// fixed device table.
type Backend struct {
	mu      sync.Mutex
	devices []Device

	// Status, when set, overrides the status code returned by ChangeMode.
	Status *platform.StatusCode
	// DeviceErr and ModeErr make the matching enumeration fail.
	DeviceErr error
	ModeErr   error

	deviceCalls int
	modeCalls   int
	applyCalls  int
	requests    []platform.ModeRequest
}

// New returns a backend serving devices in the given order.
func New(devices ...Device) *Backend {
	return &Backend{devices: devices}
}

// Default returns a backend with a primary 1440p high-refresh display, a
// 1080p secondary and one detached output.
func Default() *Backend {
	return New(
		Device{
			Info: platform.DeviceInfo{
				Name:        `\\.\DISPLAY1`,
				Description: "Simulated Graphics Adapter",
				StateFlags:  platform.StateAttachedToDesktop | platform.StatePrimaryDevice,
			},
			Modes: modeTable(
				[2]int{2560, 1440}, []int{165, 144, 120, 60},
				[2]int{1920, 1080}, []int{144, 120, 60},
				[2]int{1280, 720}, []int{60},
			),
			Current: model.RawMode{Width: 2560, Height: 1440, Refresh: 165, BitsPerPixel: 32},
		},
		Device{
			Info: platform.DeviceInfo{
				Name:        `\\.\DISPLAY2`,
				Description: "Simulated Graphics Adapter",
				StateFlags:  platform.StateAttachedToDesktop,
			},
			Modes: modeTable(
				[2]int{1920, 1080}, []int{75, 60},
				[2]int{1680, 1050}, []int{60},
				[2]int{1024, 768}, []int{75, 60},
			),
			Current: model.RawMode{Width: 1920, Height: 1080, Refresh: 60, BitsPerPixel: 32},
		},
		Device{
			Info: platform.DeviceInfo{
				Name:        `\\.\DISPLAY3`,
				Description: "Simulated Graphics Adapter",
			},
		},
	)
}

// modeTable expands alternating resolution/rates pairs into raw records,
// emitting every rate at 32 and 16 bits per pixel like a real driver does.
func modeTable(pairs ...interface{}) []model.RawMode {
	var modes []model.RawMode
	for i := 0; i+1 < len(pairs); i += 2 {
		res := pairs[i].([2]int)
		for _, rate := range pairs[i+1].([]int) {
			for _, bpp := range []int{32, 16} {
				modes = append(modes, model.RawMode{Width: res[0], Height: res[1], Refresh: rate, BitsPerPixel: bpp})
			}
		}
	}
	return modes
}

// Provider wraps the backend in a platform.Provider.
func (b *Backend) Provider() *platform.Provider {
	return &platform.Provider{
		Name:    "simulated",
		Devices: b,
		Modes:   b,
		Changer: b,
	}
}

func (b *Backend) EnumDevice(index int) (platform.DeviceInfo, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deviceCalls++
	if b.DeviceErr != nil {
		return platform.DeviceInfo{}, false, b.DeviceErr
	}
	if index < 0 || index >= len(b.devices) {
		return platform.DeviceInfo{}, false, nil
	}
	return b.devices[index].Info, true, nil
}

func (b *Backend) EnumMode(device string, index int) (model.RawMode, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modeCalls++
	if b.ModeErr != nil {
		return model.RawMode{}, false, b.ModeErr
	}
	d := b.find(device)
	if d == nil {
		return model.RawMode{}, false, fmt.Errorf("unknown device %q", device)
	}
	if index < 0 || index >= len(d.Modes) {
		return model.RawMode{}, false, nil
	}
	return d.Modes[index], true, nil
}

func (b *Backend) CurrentMode(device string) (model.RawMode, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.find(device)
	if d == nil {
		return model.RawMode{}, fmt.Errorf("unknown device %q", device)
	}
	return d.Current, nil
}

func (b *Backend) ChangeMode(req platform.ModeRequest) (platform.StatusCode, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.applyCalls++
	b.requests = append(b.requests, req)

	if b.Status != nil {
		return *b.Status, nil
	}
	d := b.find(req.Device)
	if d == nil {
		return platform.StatusDriverRejected, nil
	}
	for _, m := range d.Modes {
		if m.Width == req.Width && m.Height == req.Height && m.Refresh == req.Refresh {
			if !req.Test {
				d.Current = m
			}
			return platform.StatusSuccess, nil
		}
	}
	return platform.StatusBadMode, nil
}

// SetStatus forces every following ChangeMode to return code.
func (b *Backend) SetStatus(code platform.StatusCode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Status = &code
}

// SetModes replaces the mode table of device.
func (b *Backend) SetModes(device string, modes []model.RawMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d := b.find(device); d != nil {
		d.Modes = modes
	}
}

// ApplyCalls returns how many mode changes were submitted.
func (b *Backend) ApplyCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyCalls
}

// DeviceCalls returns how many device records were requested.
func (b *Backend) DeviceCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deviceCalls
}

// ModeCalls returns how many mode records were requested.
func (b *Backend) ModeCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modeCalls
}

// Requests returns a copy of every submitted mode request.
func (b *Backend) Requests() []platform.ModeRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]platform.ModeRequest(nil), b.requests...)
}

func (b *Backend) find(name string) *Device {
	for i := range b.devices {
		if b.devices[i].Info.Name == name {
			return &b.devices[i]
		}
	}
	return nil
}
