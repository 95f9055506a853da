// Package notify writes one-line, leveled diagnostics for the docmat CLI.
//
// Diagnostics are advisory: a warning never changes the exit status of a
// build. Colors follow fatih/color's global NoColor switch, so output written
// to a pipe or a buffer is plain text.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

const (
	// ErrorType is a fatal problem (red, ✗).
	ErrorType MessageType = iota
	// WarningType is an advisory problem such as an unresolved reference (yellow, ⚠).
	WarningType
	// ActivityType reports progress such as a written file (default color, ►).
	ActivityType
	// SuccessType reports a finished build (green, ✔).
	SuccessType
)

// MessageType selects the symbol and color of a message.
type MessageType int

// Message is a single diagnostic line.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// Errorf writes an error message to w.
func Errorf(w io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: w})
}

// Warningf writes a warning message to w.
func Warningf(w io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: w})
}

// Activityf writes an activity message to w.
func Activityf(w io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: w})
}

// Successf writes a success message to w.
func Successf(w io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: w})
}

// WriteMessage formats msg and writes it as a single line.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stderr
	}
	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}
	content = strings.TrimRight(content, "\n")

	cfg := configFor(msg.Type)
	if _, err := cfg.color.Fprintf(msg.Writer, "%s%s\n", cfg.symbol, content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

type messageConfig struct {
	symbol string
	color  *fcolor.Color
}

func configFor(t MessageType) messageConfig {
	switch t {
	case ErrorType:
		return messageConfig{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return messageConfig{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return messageConfig{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return messageConfig{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	default:
		return messageConfig{color: fcolor.New(fcolor.Reset)}
	}
}
