// Package builder emits the markup primitives used by docmat pages.
//
// Two dialects implement Builder: reStructuredText (RST) and MyST
// Markdown (MyST). Pages are produced by calling the same sequence of
// primitives on either dialect, so the two stay interchangeable.
package builder

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownDialect is returned by Lookup for an unsupported dialect name.
var ErrUnknownDialect = errors.New("unknown markup dialect")

// Row is one line of a two-column table: a rendered reference and its
// description.
type Row struct {
	Ref         string
	Description string
}

// Builder writes markup constructs for one dialect.
type Builder interface {
	// Name is the dialect name accepted by Lookup.
	Name() string
	// Suffix is the output file extension, including the dot.
	Suffix() string
	// Directive writes a named directive block. An empty argument is omitted.
	Directive(w io.Writer, directive, argument string, options, contents []string)
	// Role formats an inline role reference.
	Role(role, value string) string
	Title(w io.Writer, title string)
	Table(w io.Writer, rows []Row)
	Label(w io.Writer, name string)
	// LineBlock wraps lines so that each one is kept as its own line.
	LineBlock(lines []string) []string
}

var dialects = map[string]Builder{
	"rst":  RST{},
	"myst": MyST{},
	"md":   MyST{},
}

// Lookup returns the Builder registered under name (case-insensitive).
func Lookup(name string) (Builder, error) {
	b, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownDialect, name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names lists the accepted dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
