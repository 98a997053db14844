package pattern

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/mj1618/displaymode/internal/model"
)

func TestRender_ExactSize(t *testing.T) {
	img, err := Render(model.Mode{Width: 1280, Height: 720, Refresh: 60})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 1280 || b.Dy() != 720 {
		t.Errorf("size = %dx%d, want 1280x720", b.Dx(), b.Dy())
	}
}

func TestRender_Border(t *testing.T) {
	img, err := Render(model.Mode{Width: 640, Height: 480, Refresh: 60})
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, p := range [][2]int{{320, 0}, {320, 479}, {0, 240}, {639, 240}} {
		if got := img.RGBAAt(p[0], p[1]); got != white {
			t.Errorf("border pixel %v = %v, want white", p, got)
		}
	}
	if got := img.RGBAAt(1, 1); got != markerColor {
		t.Errorf("corner marker pixel = %v, want %v", got, markerColor)
	}
	if got := img.RGBAAt(100, 50); got != gridColor {
		t.Errorf("grid pixel = %v, want %v", got, gridColor)
	}
}

func TestRender_LabelDrawn(t *testing.T) {
	img, err := Render(model.Mode{Width: 800, Height: 600, Refresh: 75})
	if err != nil {
		t.Fatal(err)
	}
	// The label sits below the crosshair; some pixel in that band is text-white.
	cx, cy := 400, 300+600/8+20
	found := false
	for y := cy - 10; y <= cy+10 && !found; y++ {
		for x := cx - 60; x <= cx+60; x++ {
			if img.RGBAAt(x, y) == textColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected label pixels below the crosshair")
	}
}

func TestRender_InvalidSize(t *testing.T) {
	tests := []model.Mode{
		{Width: 0, Height: 600},
		{Width: 800, Height: -1},
		{Width: MaxDimension + 1, Height: 100},
	}
	for _, m := range tests {
		if _, err := Render(m); err == nil {
			t.Errorf("Render(%v) should fail", m)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, model.Mode{Width: 320, Height: 200, Refresh: 60}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 200 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}
