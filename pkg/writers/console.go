package writers

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WriteConsole writes a text preview of img, one line per row framed by '|'.
// Pixels with any red print as 'X', everything else as a space.
func WriteConsole(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, bounds.Dx()+3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		line = append(line[:0], '|')
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).R > 0 {
				line = append(line, 'X')
			} else {
				line = append(line, ' ')
			}
		}
		line = append(line, '|', '\n')

		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("failed to write console row %d: %w", y-bounds.Min.Y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush console output: %w", err)
	}
	return nil
}
