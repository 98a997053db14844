package model

import "fmt"

// Resolution is a (width, height) pair in pixels.
type Resolution struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Mode is a (width, height, refresh-rate) triple a device can be driven at.
type Mode struct {
	Width   int `yaml:"width"   json:"width"`
	Height  int `yaml:"height"  json:"height"`
	Refresh int `yaml:"refresh" json:"refresh"`
}

// Resolution returns the mode's (width, height) key.
func (m Mode) Resolution() Resolution {
	return Resolution{Width: m.Width, Height: m.Height}
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%dHz", m.Width, m.Height, m.Refresh)
}

// RawMode is a mode record exactly as the OS reports it.
type RawMode struct {
	Width        int
	Height       int
	Refresh      int
	BitsPerPixel int
}

// ApplyResult is the outcome of a mode change request.
type ApplyResult struct {
	Device  string `yaml:"device"            json:"device"`
	Mode    Mode   `yaml:"mode"              json:"mode"`
	OK      bool   `yaml:"ok"                json:"ok"`
	Status  int    `yaml:"status"            json:"status"`
	Message string `yaml:"message"           json:"message"`
	DryRun  bool   `yaml:"dry_run,omitempty" json:"dry_run,omitempty"`
}
