package writers

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
