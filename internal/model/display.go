package model

import "fmt"

// Display represents an OS-recognised display output.
type Display struct {
	Index       int    `yaml:"index"                 json:"index"`
	Name        string `yaml:"name"                  json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Active      bool   `yaml:"active"                json:"active"`
	Primary     bool   `yaml:"primary,omitempty"     json:"primary,omitempty"`
}

// Label returns the human-facing name used in pickers, e.g. "Display 1 (\\.\DISPLAY1)".
// position is the zero-based position of the display in the active list.
func (d Display) Label(position int) string {
	label := fmt.Sprintf("Display %d (%s)", position+1, d.Name)
	if d.Primary {
		label += " *"
	}
	return label
}
