package builder

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// RST renders reStructuredText for Sphinx.
type RST struct{}

func (RST) Name() string   { return "rst" }
func (RST) Suffix() string { return ".rst" }

func (RST) Directive(w io.Writer, directive, argument string, options, contents []string) {
	if argument != "" {
		fmt.Fprintf(w, ".. %s:: %s\n", directive, argument)
	} else {
		fmt.Fprintf(w, ".. %s::\n", directive)
	}
	for _, opt := range options {
		fmt.Fprintf(w, "   %s\n", opt)
	}
	fmt.Fprintln(w)
	for _, line := range contents {
		fmt.Fprintln(w, "  ", line)
	}
	fmt.Fprintln(w)
}

func (RST) Role(role, value string) string {
	return fmt.Sprintf(":%s:`%s`", role, value)
}

func (RST) Title(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", utf8.RuneCountInString(title)))
	fmt.Fprintln(w)
}

func (RST) Table(w io.Writer, rows []Row) {
	fmt.Fprint(w, ".. list-table::\n\n")
	for _, row := range rows {
		fmt.Fprintf(w, "   * - %s\n", row.Ref)
		fmt.Fprintf(w, "     - %s\n", row.Description)
	}
	fmt.Fprintln(w)
}

func (RST) Label(w io.Writer, name string) {
	fmt.Fprintf(w, ".. _%s:\n\n", name)
}

func (RST) LineBlock(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = "| " + line
		}
	}
	return out
}
