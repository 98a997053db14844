package x11

import "github.com/mj1618/displaymode/internal/platform"

func newProvider() (*platform.Provider, error) {
	conn, err := NewConnection()
	if err != nil {
		return nil, err
	}
	display := NewDisplay(conn)
	return &platform.Provider{
		Name:    "x11",
		Devices: display,
		Modes:   display,
		Changer: display,
		Close:   conn.Close,
	}, nil
}

func init() {
	platform.RegisterBackend("x11", newProvider)
}
