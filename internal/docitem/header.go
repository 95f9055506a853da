package docitem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

const commentMarker = "%"

// readHeader returns the first line of a source file and the comment block
// that follows it. Lines before the first comment line are skipped, which
// covers signatures continued over several lines. The first comment line is
// trimmed on both sides, later ones only on the right. ok is false for an
// empty file. Lines may be of any length.
func readHeader(path string) (first string, header []string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, false, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, more, err := readLine(r)
	if err != nil {
		return "", nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	if !more && line == "" {
		return "", nil, false, nil
	}
	first = strings.TrimRightFunc(line, unicode.IsSpace)

	started := false
	for more {
		line, more, err = readLine(r)
		if err != nil {
			return "", nil, false, fmt.Errorf("reading %s: %w", path, err)
		}
		if !more && line == "" {
			break
		}
		isComment := strings.HasPrefix(line, commentMarker)
		if !started {
			if isComment {
				header = append(header, strings.TrimSpace(line[len(commentMarker):]))
				started = true
			}
			continue
		}
		if !isComment {
			break
		}
		header = append(header, strings.TrimRightFunc(line[len(commentMarker):], unicode.IsSpace))
	}
	return first, header, true, nil
}

// readLine reads one line without its terminator. more is false once the
// input is exhausted; a final unterminated line is still returned.
func readLine(r *bufio.Reader) (line string, more bool, err error) {
	line, err = r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimSuffix(line, "\r"), false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true, nil
}
