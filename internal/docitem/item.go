// Package docitem builds the documentation tree of a MATLAB source tree and
// renders it with a builder.Builder.
//
// Every directory is a Package and every documented .m file is an Item. The
// leading comment block of a file is its documentation. A build is two
// phases: Build walks a whole tree and fills the Context registries, then
// Render or Generate emits markup, resolving "See also" references against
// the registries.
package docitem

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Kind classifies a source file.
type Kind int

const (
	Script Kind = iota
	Function
	Class
)

func (k Kind) String() string {
	switch k {
	case Function:
		return "function"
	case Class:
		return "class"
	default:
		return "script"
	}
}

// Role is the cross-reference role of items of this kind.
func (k Kind) Role() string {
	switch k {
	case Function:
		return "func"
	case Class:
		return "class"
	default:
		return "obj"
	}
}

// Directive is the directive that defines items of this kind.
func (k Kind) Directive() string {
	if k == Class {
		return "py:class"
	}
	return "py:function"
}

const seeAlsoMarker = "See also"

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Item is the documentation of one source file.
type Item struct {
	Name string
	Kind Kind
	// Path is the source file, empty for items built from memory.
	Path        string
	Description string
	// Body holds the header lines after the description, with
	// self-references emphasized and "See also" lines removed.
	Body []string
	// Signature is the first parenthesized argument list found next to a
	// self-reference, lower-cased.
	Signature string
	// SeeAlso lists the case-folded names of the last "See also" line.
	SeeAlso []string

	headed bool
}

// NewItem scans the header lines of a file (comment marker removed). It
// reports false when the header marks the file as private; such files are
// left out of the documentation.
func NewItem(name string, kind Kind, header []string) (*Item, bool) {
	it := &Item{Name: name, Kind: kind}
	if len(header) == 0 {
		return it, true
	}
	first := header[0]
	if strings.Contains(fold(first), "private") {
		return nil, false
	}
	it.headed = true
	it.Description = strings.TrimSpace(strings.ReplaceAll(first, strings.ToUpper(name), ""))

	m := newSelfRef(name)
	for _, line := range header[1:] {
		if idx := strings.Index(line, seeAlsoMarker); idx >= 0 {
			it.SeeAlso = seeAlsoNames(line, idx)
			continue
		}
		it.Body = append(it.Body, m.emphasize(line, &it.Signature))
	}
	return it, true
}

// Lines returns the description followed by the body, or nil for an item
// without a header. The returned slice is a fresh copy.
func (it *Item) Lines() []string {
	if !it.headed {
		return nil
	}
	lines := make([]string, 0, len(it.Body)+1)
	lines = append(lines, it.Description)
	return append(lines, it.Body...)
}

func seeAlsoNames(line string, idx int) []string {
	rest := line[idx+len(seeAlsoMarker):]
	if rest == "" {
		return nil
	}
	_, size := utf8.DecodeRuneInString(rest)
	words := wordRe.FindAllString(rest[size:], -1)
	names := make([]string, len(words))
	for i, w := range words {
		names[i] = fold(w)
	}
	return names
}

func fold(s string) string {
	return cases.Fold().String(s)
}
