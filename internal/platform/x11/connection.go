package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Connection wraps an X server connection with RandR initialised.
type Connection struct {
	Conn *xgb.Conn
	Root xproto.Window
}

// NewConnection connects to $DISPLAY and initialises RandR.
func NewConnection() (*Connection, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return &Connection{Conn: conn, Root: root}, nil
}

// Close closes the X connection.
func (c *Connection) Close() error {
	if c != nil && c.Conn != nil {
		c.Conn.Close()
	}
	return nil
}
