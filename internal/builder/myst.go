package builder

import (
	"fmt"
	"io"
	"strings"
)

const fence = ":::"

// MyST renders MyST Markdown, the CommonMark superset understood by
// myst-parser.
type MyST struct{}

func (MyST) Name() string   { return "myst" }
func (MyST) Suffix() string { return ".md" }

// Directive writes a colon fence. The outer fence is made longer than any
// fence nested in contents so that nested directives close in order.
func (MyST) Directive(w io.Writer, directive, argument string, options, contents []string) {
	f := outerFence(contents)
	if argument != "" {
		fmt.Fprintf(w, "%s{%s} %s\n", f, directive, argument)
	} else {
		fmt.Fprintf(w, "%s{%s}\n", f, directive)
	}
	for _, opt := range options {
		fmt.Fprintln(w, opt)
		fmt.Fprintln(w)
	}
	for _, line := range contents {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s\n\n", f)
}

func (MyST) Role(role, value string) string {
	return fmt.Sprintf("{%s}`%s`", role, value)
}

func (MyST) Title(w io.Writer, title string) {
	fmt.Fprintf(w, "# %s\n\n", title)
}

func (MyST) Table(w io.Writer, rows []Row) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, "| Name | Description |")
	fmt.Fprintln(w, "| ---- | ----------- |")
	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %s |\n", row.Ref, row.Description)
	}
	fmt.Fprintln(w)
}

func (MyST) Label(w io.Writer, name string) {
	fmt.Fprintf(w, "(%s)=\n", name)
}

func (MyST) LineBlock(lines []string) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, fence+"{line-block}")
	out = append(out, lines...)
	return append(out, fence+"\n")
}

func outerFence(contents []string) string {
	longest := 0
	for _, line := range contents {
		n := len(line) - len(strings.TrimLeft(line, ":"))
		if n >= len(fence) && n > longest {
			longest = n
		}
	}
	if longest == 0 {
		return fence
	}
	return strings.Repeat(":", longest+1)
}
