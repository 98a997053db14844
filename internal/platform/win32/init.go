//go:build windows

package win32

import "github.com/mj1618/displaymode/internal/platform"

func init() {
	newProvider := func() (*platform.Provider, error) {
		display := NewDisplay()
		return &platform.Provider{
			Name:    "windows",
			Devices: display,
			Modes:   display,
			Changer: display,
		}, nil
	}
	platform.NewProviderFunc = newProvider
	platform.RegisterBackend("windows", newProvider)
	platform.RequestElevationFunc = RelaunchElevated
}
