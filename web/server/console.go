package server

import (
	"fmt"
	"io"
	"time"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by copying each message to a server log
// and forwarding it to the client console channel.
type WebLogger struct {
	out         io.Writer
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for a single render. out may be nil.
func NewWebLogger(out io.Writer, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		out:         out,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.out != nil {
		io.WriteString(wl.out, message)
	}

	if wl.consoleChan == nil {
		return
	}
	// Drop the message rather than stall a render when nobody is reading
	select {
	case wl.consoleChan <- ConsoleMessage{Message: message, Timestamp: time.Now(), Level: "info"}:
	default:
	}
}
