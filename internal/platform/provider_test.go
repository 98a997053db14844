package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate an unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	for _, name := range []string{"", BackendAuto} {
		_, err := NewProvider(name)
		if err == nil {
			t.Fatalf("NewProvider(%q): expected error on unsupported platform", name)
		}
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("NewProvider(%q): expected ErrUnsupported, got: %v", name, err)
		}
	}
}

func TestNewProvider_Native(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = func() (*Provider, error) { return &Provider{Name: "native"}, nil }
	defer func() { NewProviderFunc = orig }()

	p, err := NewProvider(BackendAuto)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "native" {
		t.Errorf("got provider %q, want native", p.Name)
	}
}

func TestNewProvider_Registered(t *testing.T) {
	RegisterBackend("test-backend", func() (*Provider, error) {
		return &Provider{Name: "test-backend"}, nil
	})
	defer func() {
		backendsMu.Lock()
		delete(backends, "test-backend")
		backendsMu.Unlock()
	}()

	p, err := NewProvider("test-backend")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "test-backend" {
		t.Errorf("got provider %q", p.Name)
	}

	found := false
	for _, name := range Backends() {
		if name == "test-backend" {
			found = true
		}
	}
	if !found {
		t.Error("Backends() should list test-backend")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider("no-such-backend")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "no-such-backend") {
		t.Errorf("error should name the backend: %v", err)
	}
}
