package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// DecodeRGBA decodes a PNG or JPEG into RGBA. With flip set the rows are
// reversed so the first row is the bottom of the image, as GL expects.
func DecodeRGBA(r io.Reader, flip bool) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	if flip {
		flipRows(rgba)
	}
	return rgba, nil
}

// LoadImage opens and decodes an image file with DecodeRGBA.
func LoadImage(path string, flip bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %s: %w", path, err)
	}
	defer f.Close()

	rgba, err := DecodeRGBA(f, flip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rgba, nil
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
