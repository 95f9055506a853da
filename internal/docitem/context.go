package docitem

import (
	"io"

	"github.com/agentflare-ai/go-docmat/internal/builder"
	"github.com/agentflare-ai/go-docmat/internal/notify"
)

// Context owns the name registries of one build. Names are case-folded.
// Entries point into the Package tree and own nothing.
//
// A Context is not safe for concurrent use; independent builds use
// independent contexts.
type Context struct {
	packages map[string]*Package
	items    map[string]*Item
	diag     io.Writer
}

// NewContext returns an empty Context writing diagnostics to diag.
// A nil diag discards them.
func NewContext(diag io.Writer) *Context {
	if diag == nil {
		diag = io.Discard
	}
	return &Context{
		packages: make(map[string]*Package),
		items:    make(map[string]*Item),
		diag:     diag,
	}
}

// Package looks up a package by directory name.
func (c *Context) Package(name string) (*Package, bool) {
	p, ok := c.packages[fold(name)]
	return p, ok
}

// Item looks up an item by name anywhere in the tree.
func (c *Context) Item(name string) (*Item, bool) {
	it, ok := c.items[fold(name)]
	return it, ok
}

// AddPackage registers p under its directory name. A later package with
// the same name shadows an earlier one.
func (c *Context) AddPackage(p *Package) {
	c.packages[fold(p.Name)] = p
}

// AddItem registers it under its name. Names are assumed unique across the
// tree: a different item with the same name shadows the earlier one and a
// warning is written. Registering the same source file again is silent.
func (c *Context) AddItem(it *Item) {
	key := fold(it.Name)
	if prev, ok := c.items[key]; ok && prev != it && (prev.Path == "" || prev.Path != it.Path) {
		notify.Warningf(c.diag, "Duplicate name %s: %s shadows %s", key, displayPath(it), displayPath(prev))
	}
	c.items[key] = it
}

// Resolve renders a reference to name as seen from the item source.
// Unknown names fall back to a function reference and a warning; they are
// never an error.
func (c *Context) Resolve(b builder.Builder, source, name string) string {
	target, ok := c.items[fold(name)]
	if !ok {
		notify.Warningf(c.diag, "Undefined name in %s: %s", source, name)
		return b.Role(Function.Role(), name)
	}
	return b.Role(target.Kind.Role(), target.Name)
}

func displayPath(it *Item) string {
	if it.Path == "" {
		return it.Name
	}
	return it.Path
}
