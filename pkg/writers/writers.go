package writers

import (
	"fmt"
	"image"
	"io"
)

// Format names an output encoding
type Format string

const (
	FormatPPM     Format = "ppm"
	FormatPNG     Format = "png"
	FormatConsole Format = "console"
)

// Validate returns an error unless f is a supported format
func (f Format) Validate() error {
	switch f {
	case FormatPPM, FormatPNG, FormatConsole:
		return nil
	}
	return fmt.Errorf("unknown output format: %q", f)
}

// Write encodes img in the given format
func Write(w io.Writer, img *image.RGBA, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return WritePNG(w, img)
	case FormatConsole:
		return WriteConsole(w, img)
	default:
		return format.Validate()
	}
}

// Extension returns the file extension for a format, without the dot
func (f Format) Extension() string {
	if f == FormatConsole {
		return "txt"
	}
	return string(f)
}
