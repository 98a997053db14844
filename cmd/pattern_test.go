package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPattern_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pattern.png")
	printed, err := execute(t, "pattern", "--width", "320", "--height", "200", "--refresh", "60", "--out", out)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG")
	}
	if !strings.Contains(printed, "refresh: 60") {
		t.Errorf("printed = %s", printed)
	}
}

func TestPattern_InvalidSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pattern.png")
	if _, err := execute(t, "pattern", "--width", "0", "--height", "200", "--out", out); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no file should be written for an invalid size")
	}
}
