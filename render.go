package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/agentflare-ai/go-docmat/internal/builder"
	"github.com/agentflare-ai/go-docmat/internal/docitem"
	"github.com/agentflare-ai/go-docmat/internal/notify"
)

// docTree is a fully built source tree, ready to render.
type docTree struct {
	ctx *docitem.Context
	// modules are the top-level packages by name, including the
	// non-recursive package of the scan root itself.
	modules map[string]*docitem.Package
}

// buildTree walks root recursively, then adds root as a flat package so
// that the files directly inside it get a page of their own.
func buildTree(root string, cfg *Config, diag io.Writer) (*docTree, error) {
	policy, err := docitem.ParseScriptFailure(cfg.ScriptFailure)
	if err != nil {
		return nil, err
	}
	var ignore docitem.Matcher
	if cfg.IgnoreFile != "" {
		ignore, err = docitem.LoadIgnore(resolve(root, cfg.IgnoreFile))
		if err != nil {
			return nil, err
		}
	}
	opts := docitem.Options{
		Recursive:     cfg.Recursive,
		ScriptFailure: policy,
		Ignore:        ignore,
		IgnoreRoot:    root,
	}

	ctx := docitem.NewContext(diag)
	top, err := docitem.Build(ctx, root, root, opts)
	if err != nil {
		return nil, err
	}
	flatOpts := opts
	flatOpts.Recursive = false
	flat, err := docitem.Build(ctx, root, "", flatOpts)
	if err != nil {
		return nil, err
	}
	ctx.AddPackage(flat)

	modules := make(map[string]*docitem.Package, len(top.Subpackages)+1)
	for _, p := range top.Subpackages {
		modules[p.Name] = p
	}
	modules[flat.Name] = flat
	return &docTree{ctx: ctx, modules: modules}, nil
}

func (t *docTree) module(name string) (*docitem.Package, error) {
	p, ok := t.modules[name]
	if !ok {
		return nil, fmt.Errorf("unknown module %q", name)
	}
	return p, nil
}

// lookup finds a package by name at any depth.
func (t *docTree) lookup(name string) (*docitem.Package, error) {
	if p, ok := t.modules[name]; ok {
		return p, nil
	}
	if p, ok := t.ctx.Package(name); ok {
		return p, nil
	}
	return nil, fmt.Errorf("no package named %q", name)
}

// renderModules renders every configured module, either as files below
// dest/api or as one stream on stdout.
func (app *cliApp) renderModules(t *docTree, cfg *Config, b builder.Builder, dest string) error {
	for _, name := range cfg.Modules {
		p, err := t.module(name)
		if err != nil {
			return err
		}
		if app.opts.toStdout {
			p.Print(app.stdout, t.ctx, b, cfg.Recursive)
			continue
		}
		written, err := p.Generate(dest, t.ctx, b, cfg.Recursive)
		if app.opts.verbose {
			for _, path := range written {
				notify.Activityf(app.stderr, "wrote %s", relativeTo(dest, path))
			}
		}
		if err != nil {
			return err
		}
	}
	if app.opts.verbose && !app.opts.toStdout {
		notify.Successf(app.stderr, "rendered %d modules to %s", len(cfg.Modules), filepath.Join(dest, docitem.APIDir))
	}
	return nil
}

func relativeTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
