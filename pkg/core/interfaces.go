package core

// Logger receives progress messages from long-running operations
type Logger interface {
	Printf(format string, args ...interface{})
}
