// Package pattern renders calibration test patterns at an exact display mode.
// Viewing the image full-screen at 100% shows whether the panel maps every
// pixel: the 1-pixel border, grid and corner markers blur or clip otherwise.
package pattern

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/displaymode/internal/model"
)

// MaxDimension caps the rendered size to keep memory use bounded.
const MaxDimension = 16384

// GridStep is the spacing of the grid lines in pixels.
const GridStep = 100

var (
	background  = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	gridColor   = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	borderColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	markerColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	crossColor  = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	textColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Render draws a test pattern of exactly mode.Width x mode.Height pixels.
func Render(mode model.Mode) (*image.RGBA, error) {
	w, h := mode.Width, mode.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid pattern size %dx%d", w, h)
	}
	if w > MaxDimension || h > MaxDimension {
		return nil, fmt.Errorf("pattern size %dx%d exceeds %d pixels", w, h, MaxDimension)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for x := GridStep; x < w; x += GridStep {
		vline(img, x, 0, h, gridColor)
	}
	for y := GridStep; y < h; y += GridStep {
		hline(img, 0, w, y, gridColor)
	}

	// 1-pixel border on the outermost rows and columns
	hline(img, 0, w, 0, borderColor)
	hline(img, 0, w, h-1, borderColor)
	vline(img, 0, 0, h, borderColor)
	vline(img, w-1, 0, h, borderColor)

	drawCornerMarkers(img, markerColor)

	cx, cy := w/2, h/2
	arm := min(w, h) / 8
	hline(img, cx-arm, cx+arm+1, cy, crossColor)
	vline(img, cx, cy-arm, cy+arm+1, crossColor)

	label := mode.String()
	if mode.Refresh <= 0 {
		label = mode.Resolution().String()
	}
	drawLabel(img, label, cx, cy+arm+20)
	return img, nil
}

// WritePNG renders mode and encodes it as PNG to w.
func WritePNG(w io.Writer, mode model.Mode) error {
	img, err := Render(mode)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

func hline(img *image.RGBA, x1, x2, y int, c color.Color) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := max(x1, b.Min.X); x < x2 && x < b.Max.X; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y1, y2 int, c color.Color) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := max(y1, b.Min.Y); y < y2 && y < b.Max.Y; y++ {
		img.Set(x, y, c)
	}
}

// drawCornerMarkers fills an L-shaped marker inside each corner, one pixel in
// from the border.
func drawCornerMarkers(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy()) / 20
	if size < 3 {
		return
	}
	corners := []struct{ x, y, dx, dy int }{
		{1, 1, 1, 1},
		{b.Max.X - 2, 1, -1, 1},
		{1, b.Max.Y - 2, 1, -1},
		{b.Max.X - 2, b.Max.Y - 2, -1, -1},
	}
	for _, k := range corners {
		for i := 0; i < size; i++ {
			img.Set(k.x+i*k.dx, k.y, c)
			img.Set(k.x, k.y+i*k.dy, c)
		}
	}
}

// drawLabel draws text centred on (x, y) with a drop shadow.
func drawLabel(img *image.RGBA, text string, x, y int) {
	// basicfont.Face7x13: 7 px advance, 13 px line height
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	for _, pass := range []struct {
		dx, dy int
		c      color.Color
	}{
		{1, 1, shadowColor},
		{0, 0, textColor},
	} {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(pass.c),
			Face: basicfont.Face7x13,
			Dot: fixed.Point26_6{
				X: fixed.I(offsetX + pass.dx),
				Y: fixed.I(offsetY + pass.dy),
			},
		}
		d.DrawString(text)
	}
}
