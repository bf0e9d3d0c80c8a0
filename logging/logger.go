// Package logging provides a small tagged, colored logger used across
// the application. Lines are written as "[TAG] [LEVEL] message" with
// the tag colored for quick visual scanning of interleaved output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const colorReset = "\033[0m"

// Logger writes tagged log lines to a single destination.
type Logger struct {
	tag   string
	color string
	out   io.Writer
	mu    sync.Mutex
}

// New creates a Logger with the given tag and ANSI color. A nil writer
// defaults to stdout.
func New(tag, color string, out io.Writer) (*Logger, error) {
	if tag == "" {
		return nil, errors.New("logger tag is required")
	}
	if out == nil {
		out = os.Stdout
	}

	return &Logger{
		tag:   tag,
		color: color,
		out:   out,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log("INFO", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log("ERROR", msg)
}

func (l *Logger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s[%s]%s [%s] %s\n", l.color, l.tag, colorReset, level, msg)
}
