//go:build darwin && cgo

package darwin

import "github.com/mj1618/displaymode/internal/platform"

func newProvider() (*platform.Provider, error) {
	d := NewDisplay()
	return &platform.Provider{
		Name:    "macos",
		Devices: d,
		Modes:   d,
		Changer: d,
	}, nil
}

func init() {
	platform.NewProviderFunc = newProvider
	platform.RegisterBackend("macos", newProvider)
}
