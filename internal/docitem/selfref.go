package docitem

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// selfRef finds whole-word, case-insensitive occurrences of an item's own
// name in a header line, optionally preceded by an assignment target
// ("y = ", "[a, b] = ") and followed by a parenthesized argument list.
// Group 2 of the pattern is the argument list.
type selfRef struct {
	name   string
	folded string
	re     *regexp2.Regexp
}

func newSelfRef(name string) selfRef {
	m := selfRef{name: name, folded: fold(name)}
	if name != "" {
		m.re = regexp2.MustCompile(`(?<!\w)(?:(\w+|\[.*?\])\s*=\s*)?`+regexp2.Escape(name)+`(\(.*\))?(?!\w)`, regexp2.IgnoreCase)
	}
	return m
}

// emphasize replaces every match in line with its bold form. The first
// argument list seen is stored in *signature when it is still empty.
func (m selfRef) emphasize(line string, signature *string) string {
	if m.re == nil {
		return line
	}
	out, err := m.re.ReplaceFunc(line, func(match regexp2.Match) string {
		if args := match.GroupByNumber(2); args != nil && args.Length > 0 && *signature == "" {
			*signature = fold(args.String())
		}
		return "**" + strings.ReplaceAll(fold(match.String()), m.folded, m.name) + "**"
	}, -1, -1)
	if err != nil {
		return line
	}
	return out
}
