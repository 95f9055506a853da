package docitem

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/go-docmat/internal/builder"
)

// APIDir is the directory below the destination that receives pages.
const APIDir = "api"

// Render writes the page of p: label, title, sub-package listing (when
// recursive), class and function tables, then one block per class and per
// function.
func (p *Package) Render(w io.Writer, ctx *Context, b builder.Builder, recursive bool) {
	b.Label(w, p.Label())
	b.Title(w, p.Name)

	if recursive && len(p.Subpackages) > 0 {
		ids := make([]string, len(p.Subpackages))
		rows := make([]builder.Row, len(p.Subpackages))
		for i, sub := range p.Subpackages {
			ids[i] = sub.ID
			rows[i] = builder.Row{Ref: b.Role("ref", sub.Label()), Description: sub.Description}
		}
		b.Directive(w, "toctree", "", []string{":hidden:"}, ids)
		b.Directive(w, "rubric", "Modules", nil, nil)
		b.Table(w, rows)
	}
	if len(p.Classes) > 0 {
		b.Directive(w, "rubric", "Classes", nil, nil)
		b.Table(w, itemRows(b, p.Classes, Class.Role()))
	}
	if len(p.Functions) > 0 {
		b.Directive(w, "rubric", "Functions", nil, nil)
		b.Table(w, itemRows(b, p.Functions, Function.Role()))
	}
	for _, c := range p.Classes {
		c.Render(w, ctx, b)
	}
	for _, f := range p.Functions {
		f.Render(w, ctx, b)
	}
}

func itemRows(b builder.Builder, items []*Item, role string) []builder.Row {
	rows := make([]builder.Row, len(items))
	for i, it := range items {
		rows[i] = builder.Row{Ref: b.Role(role, it.Name), Description: it.Description}
	}
	return rows
}

// Render writes the defining directive of it. "See also" names are
// resolved through ctx; it is not modified.
func (it *Item) Render(w io.Writer, ctx *Context, b builder.Builder) {
	contents := it.Lines()
	if len(it.SeeAlso) > 0 {
		refs := make([]string, len(it.SeeAlso))
		for i, name := range it.SeeAlso {
			refs[i] = ctx.Resolve(b, it.Name, name)
		}
		contents = append(contents, "See also "+strings.Join(refs, ", "))
	}
	var body []string
	if len(contents) > 0 {
		body = b.LineBlock(contents)
	}
	b.Directive(w, it.Kind.Directive(), it.Name+it.Signature, nil, body)
}

// Print writes the page of p, followed by the pages of its descendants
// when recursive, to a single stream.
func (p *Package) Print(w io.Writer, ctx *Context, b builder.Builder, recursive bool) {
	p.Render(w, ctx, b, recursive)
	if !recursive {
		return
	}
	for _, sub := range p.Subpackages {
		sub.Print(w, ctx, b, recursive)
	}
}

// PagePath is the output file of p below dest.
func (p *Package) PagePath(dest string, b builder.Builder) string {
	return filepath.Join(dest, APIDir, p.ID+b.Suffix())
}

// Generate writes the page of p, and of its descendants when recursive,
// under dest/api. It returns the written paths in write order.
func (p *Package) Generate(dest string, ctx *Context, b builder.Builder, recursive bool) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dest, APIDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	var written []string
	err := p.generate(dest, ctx, b, recursive, &written)
	return written, err
}

func (p *Package) generate(dest string, ctx *Context, b builder.Builder, recursive bool, written *[]string) error {
	var buf bytes.Buffer
	p.Render(&buf, ctx, b, recursive)
	path := p.PagePath(dest, b)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	*written = append(*written, path)
	if !recursive {
		return nil
	}
	for _, sub := range p.Subpackages {
		if err := sub.generate(dest, ctx, b, recursive, written); err != nil {
			return err
		}
	}
	return nil
}
