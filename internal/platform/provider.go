package platform

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Provider bundles the display backends for one windowing system.
type Provider struct {
	Name    string
	Devices DeviceEnumerator
	Modes   ModeEnumerator
	Changer ModeChanger
	// Close releases backend resources. May be nil.
	Close func() error
}

// BackendAuto selects the native backend for the current OS.
const BackendAuto = "auto"

// ErrUnsupported is returned when no native backend exists for this OS.
var ErrUnsupported = fmt.Errorf("no native display backend for %s/%s; supported: windows, x11, macos (use --backend simulated to try the tool)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by the native backend package via init().
// See internal/platform/win32/init.go and internal/platform/x11/init_unix.go.
var NewProviderFunc func() (*Provider, error)

// RequestElevationFunc is set by platform packages that need administrator
// rights to change display settings. It returns true when the process has
// relaunched itself elevated and the current instance should exit.
var RequestElevationFunc func(args []string) (relaunched bool, err error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]func() (*Provider, error){}
)

// RegisterBackend makes a named backend selectable with --backend.
func RegisterBackend(name string, fn func() (*Provider, error)) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = fn
}

// Backends returns the names of all registered backends, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider returns the provider registered under name, or the native one
// for "auto" and "".
func NewProvider(name string) (*Provider, error) {
	if name == "" || name == BackendAuto {
		if NewProviderFunc == nil {
			return nil, ErrUnsupported
		}
		return NewProviderFunc()
	}

	backendsMu.RLock()
	fn, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("backend %q is not available on %s (available: %v)", name, runtime.GOOS, Backends())
	}
	return fn()
}
