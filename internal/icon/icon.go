// Package icon renders the extension's icon set: a white bookmark glyph on a
// blue rounded plate, with a green plus badge on the larger sizes.
package icon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Palette from the extension's stylesheet.
var (
	PlateBlue  = color.RGBA{37, 99, 235, 255}
	GlyphWhite = color.RGBA{255, 255, 255, 255}
	BadgeGreen = color.RGBA{52, 211, 153, 255}
)

// BadgeMinSize is the smallest icon that gets the plus badge. Below this the
// badge would collapse into a few unreadable pixels.
const BadgeMinSize = 32

// Generate renders the icon at the given size and writes it as a PNG,
// overwriting any existing file at path.
func Generate(size int, path string) error {
	if size < 1 {
		return fmt.Errorf("icon size must be positive, got %d", size)
	}
	return render(size).SavePNG(path)
}

// Render returns the icon raster without writing it anywhere.
func Render(size int) image.Image {
	return render(size).Image()
}

func render(size int) *gg.Context {
	// NewContext starts fully transparent
	dc := gg.NewContext(size, size)

	// Rounded background plate
	margin := size / 8
	dc.SetColor(PlateBlue)
	dc.DrawRoundedRectangle(
		float64(margin), float64(margin),
		float64(size-2*margin), float64(size-2*margin),
		float64(size/6))
	dc.Fill()

	// Bookmark glyph: a rectangle with a triangular notch cut into the
	// bottom edge at 70%/90% of the glyph height
	w := size / 2
	h := size * 3 / 5
	x := (size - w) / 2
	y := (size - h) / 2

	dc.SetColor(GlyphWhite)
	dc.MoveTo(float64(x), float64(y))
	dc.LineTo(float64(x+w), float64(y))
	dc.LineTo(float64(x+w), float64(y+h*7/10))
	dc.LineTo(float64(x+w/2), float64(y+h*9/10))
	dc.LineTo(float64(x), float64(y+h*7/10))
	dc.ClosePath()
	dc.Fill()

	if size >= BadgeMinSize {
		drawBadge(dc, size)
	}
	return dc
}

// drawBadge puts a green circle with a white plus sign in the top-right
// corner, anchored 2px in from the canvas edge.
func drawBadge(dc *gg.Context, size int) {
	plus := size / 8
	px := size - plus - 2
	py := 2

	dc.SetColor(BadgeGreen)
	dc.DrawCircle(
		float64(px)+float64(plus)/2,
		float64(py)+float64(plus)/2,
		float64(plus)/2+2)
	dc.Fill()

	thickness := plus / 4
	if thickness < 1 {
		thickness = 1
	}
	dc.SetColor(GlyphWhite)
	fillBox(dc, px+plus/2-thickness/2, py, px+plus/2+thickness/2, py+plus)
	fillBox(dc, px, py+plus/2-thickness/2, px+plus, py+plus/2+thickness/2)
}

// fillBox fills the inclusive pixel box [x0,y0]..[x1,y1], so a zero-extent
// span still paints one pixel column or row. Keeps the 32px badge bars
// visible, where the computed thickness is a single pixel.
func fillBox(dc *gg.Context, x0, y0, x1, y1 int) {
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0+1), float64(y1-y0+1))
	dc.Fill()
}
