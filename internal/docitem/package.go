package docitem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

const (
	// SourceExt is the extension of documented files.
	SourceExt = ".m"
	// ContentsFile supplies the description of its package.
	ContentsFile = "Contents.m"
	// PrivateDir is never traversed.
	PrivateDir = "private"
)

// ErrNotDirectory is returned when a build root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ScriptFailure selects what happens when a script header is private.
type ScriptFailure int

const (
	// AbortDirectory stops the walk of the current directory; entries
	// already processed are kept. This is the historical docmat behavior.
	AbortDirectory ScriptFailure = iota
	// SkipItem skips just the script, like private functions and classes.
	SkipItem
)

// ParseScriptFailure maps "abort" and "skip" to a ScriptFailure.
func ParseScriptFailure(s string) (ScriptFailure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return AbortDirectory, nil
	case "skip":
		return SkipItem, nil
	default:
		return 0, fmt.Errorf("invalid script failure policy %q (want abort or skip)", s)
	}
}

// Matcher reports whether a slash-separated path relative to the build
// root is excluded. *ignore.GitIgnore implements it.
type Matcher interface {
	MatchesPath(path string) bool
}

// LoadIgnore compiles a gitignore-syntax file. A missing file yields a nil
// Matcher and no error.
func LoadIgnore(path string) (Matcher, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading ignore file %s: %w", path, err)
	}
	return gi, nil
}

// Options control a Build.
type Options struct {
	Recursive     bool
	ScriptFailure ScriptFailure
	Ignore        Matcher
	// IgnoreRoot is the directory Ignore patterns are relative to. It
	// defaults to the build root.
	IgnoreRoot string
}

// Package is the documentation of one directory.
type Package struct {
	// ID is the dot-joined path relative to the build root. It names the
	// output file and is the toctree entry of the package.
	ID          string
	Name        string
	Dir         string
	Description string

	Subpackages []*Package
	Functions   []*Item
	Classes     []*Item
}

// Size counts the direct children of p.
func (p *Package) Size() int {
	return len(p.Subpackages) + len(p.Functions) + len(p.Classes)
}

// Label is the cross-reference target of the package page.
func (p *Package) Label() string {
	return MakeLabel(p.Name)
}

// MakeLabel derives a package label from a package name.
func MakeLabel(name string) string {
	return fold(strings.ReplaceAll(name, " ", "-")) + "_module"
}

// Build walks dir and returns its package. IDs are computed relative to
// root; an empty root means the parent of dir. Items and kept
// sub-packages are registered in ctx as they are found.
//
// Sub-directories named "private" or ending in "@" are not traversed, and
// sub-packages without any documented content are dropped.
func Build(ctx *Context, dir, root string, opts Options) (*Package, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("package %s: %w", dir, ErrNotDirectory)
	}
	if root == "" {
		root = filepath.Dir(dir)
	}
	id, err := packageID(root, dir)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(dir)
	p := &Package{
		ID:          id,
		Name:        stem(base),
		Dir:         dir,
		Description: strings.ToUpper(base),
	}
	if err := p.walk(ctx, root, opts); err != nil {
		return nil, err
	}
	p.sortChildren()
	return p, nil
}

func (p *Package) walk(ctx *Context, root string, opts Options) error {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return fmt.Errorf("package %s: %w", p.Dir, err)
	}
	ignoreRoot := opts.IgnoreRoot
	if ignoreRoot == "" {
		ignoreRoot = root
	}
	for _, entry := range entries {
		path := filepath.Join(p.Dir, entry.Name())
		isDir, isFile, err := classifyEntry(path, entry)
		if err != nil {
			return err
		}
		if ignored(opts.Ignore, ignoreRoot, path, isDir) {
			continue
		}
		switch {
		case isDir && opts.Recursive:
			if excludedDir(stem(entry.Name())) {
				continue
			}
			child, err := Build(ctx, path, root, opts)
			if err != nil {
				return err
			}
			if child.Size() > 0 {
				ctx.AddPackage(child)
				p.Subpackages = append(p.Subpackages, child)
			}
		case isFile && isSource(entry.Name()):
			abort, err := p.addFile(ctx, path, opts)
			if err != nil {
				return err
			}
			if abort {
				return nil
			}
		}
	}
	return nil
}

// addFile classifies one source file by its first line. It reports true
// when the rest of the directory must be skipped.
func (p *Package) addFile(ctx *Context, path string, opts Options) (bool, error) {
	first, header, ok, err := readHeader(path)
	if err != nil {
		return false, fmt.Errorf("source %s: %w", path, err)
	}
	if !ok {
		return false, nil
	}
	base := filepath.Base(path)
	name := stem(base)
	switch {
	case strings.HasPrefix(first, commentMarker):
		lines := append([]string{first[len(commentMarker):]}, header...)
		it, ok := NewItem(name, Script, lines)
		if !ok {
			return opts.ScriptFailure == AbortDirectory, nil
		}
		if base == ContentsFile {
			p.Description = it.Description
		}
	case strings.Contains(first, "function"):
		p.Functions = p.store(ctx, p.Functions, name, Function, path, header)
	case strings.Contains(first, "classdef"):
		p.Classes = p.store(ctx, p.Classes, name, Class, path, header)
	}
	return false, nil
}

func (p *Package) store(ctx *Context, items []*Item, name string, kind Kind, path string, header []string) []*Item {
	it, ok := NewItem(name, kind, header)
	if !ok {
		return items
	}
	it.Path = path
	ctx.AddItem(it)
	return append(items, it)
}

func (p *Package) sortChildren() {
	sort.SliceStable(p.Subpackages, func(i, j int) bool { return p.Subpackages[i].Name < p.Subpackages[j].Name })
	sort.SliceStable(p.Functions, func(i, j int) bool { return p.Functions[i].Name < p.Functions[j].Name })
	sort.SliceStable(p.Classes, func(i, j int) bool { return p.Classes[i].Name < p.Classes[j].Name })
}

func packageID(root, dir string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", fmt.Errorf("package %s: %w", dir, err)
	}
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("package %s: outside root %s", dir, root)
	}
	return strings.Join(strings.Split(filepath.ToSlash(rel), "/"), "."), nil
}

func classifyEntry(path string, entry os.DirEntry) (isDir, isFile bool, err error) {
	mode := entry.Type()
	if mode&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return false, false, nil
			}
			return false, false, fmt.Errorf("entry %s: %w", path, err)
		}
		mode = info.Mode()
	}
	return mode.IsDir(), mode.IsRegular(), nil
}

func ignored(m Matcher, root, path string, isDir bool) bool {
	if m == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if m.MatchesPath(rel) {
		return true
	}
	return isDir && m.MatchesPath(rel+"/")
}

func isSource(base string) bool {
	return filepath.Ext(base) == SourceExt && stem(base) != base
}

func excludedDir(name string) bool {
	return name == PrivateDir || strings.HasSuffix(name, "@")
}

func stem(base string) string {
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
