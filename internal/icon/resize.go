package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadLogo opens and decodes a master logo image.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo: %w", err)
	}
	return img, nil
}

// FromLogo scales a master logo down to size and writes it as a PNG. Used
// instead of the procedural glyph when the project has real artwork.
func FromLogo(src image.Image, size int, path string) error {
	if size < 1 {
		return fmt.Errorf("icon size must be positive, got %d", size)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, dst)
}
