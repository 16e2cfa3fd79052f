package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout, or to Out when set
type DefaultLogger struct {
	Out io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	if dl.Out == nil {
		fmt.Printf(format, args...)
		return
	}
	fmt.Fprintf(dl.Out, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NewStderrLogger creates a logger for when stdout carries image data
func NewStderrLogger() core.Logger {
	return &DefaultLogger{Out: os.Stderr}
}

type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}

// NewSilentLogger returns a logger that discards everything
func NewSilentLogger() core.Logger {
	return silentLogger{}
}
