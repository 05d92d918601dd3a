package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// CropRegion is a rectangle in pixels of the stored page raster.
type CropRegion struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CropPNG cuts a region out of an encoded page raster, used to attach figure
// snippets to questions during review.
func CropPNG(data []byte, region CropRegion) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	bounds := img.Bounds()
	rect := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	rect = rect.Intersect(bounds)
	if rect.Empty() {
		return nil, fmt.Errorf("crop region %+v outside raster %v", region, bounds)
	}

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	si, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("raster format does not support cropping")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, si.SubImage(rect)); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	return buf.Bytes(), nil
}
