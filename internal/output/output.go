package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/displaymode/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer is where Print writes. Tests swap it for a buffer.
var Writer io.Writer = os.Stdout

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// DevicesResult is the output of the `list` command.
type DevicesResult struct {
	Backend  string          `yaml:"backend"  json:"backend"`
	Displays []model.Display `yaml:"displays" json:"displays"`
}

// ModesResult is the output of the `modes` command.
type ModesResult struct {
	Device  string               `yaml:"device"            json:"device"`
	Current *model.Mode          `yaml:"current,omitempty" json:"current,omitempty"`
	Modes   []model.CatalogEntry `yaml:"modes"             json:"modes"`
}

// CurrentResult is the output of the `current` command.
type CurrentResult struct {
	Device string     `yaml:"device" json:"device"`
	Mode   model.Mode `yaml:"mode"   json:"mode"`
}

// Print serializes v to Writer in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(Writer, v)
		}
		return PrintJSON(Writer, v)
	case FormatYAML:
		return PrintYAML(Writer, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as compact single-line JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v as indented JSON.
func PrintPrettyJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// YAMLString renders v as YAML text, for MCP tool results.
func YAMLString(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	in := os.Stdin.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) && !IsOutputPiped()
}
