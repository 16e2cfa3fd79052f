// Package writers serializes rendered images as binary PPM, PNG or a
// terminal glyph preview.
package writers

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM writes img as a binary P6 PPM: a "P6\n<w> <h>\n255\n" header
// followed by width*height RGB triples, top row first.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, 3*width)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(bounds.Min.X+x, y)
			row[3*x] = c.R
			row[3*x+1] = c.G
			row[3*x+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y-bounds.Min.Y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
