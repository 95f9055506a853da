package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	fcolor "github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/agentflare-ai/go-docmat/internal/builder"
)

type options struct {
	configPath string
	toStdout   bool
	verbose    bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// session is the resolved input of one invocation.
type session struct {
	source string
	root   string
	dest   string
	cfg    *Config
	b      builder.Builder
}

func (app *cliApp) prepare(flags *pflag.FlagSet, source string) (*session, error) {
	if source == "" {
		source = "."
	}
	source, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("resolving source: %w", err)
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", source)
	}

	cfg, err := loadConfig(source, app.opts.configPath, flags)
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		fcolor.NoColor = true
	}
	b, err := builder.Lookup(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &session{
		source: source,
		root:   resolve(source, cfg.Root),
		dest:   resolve(source, cfg.Dest),
		cfg:    cfg,
		b:      b,
	}, nil
}

func (app *cliApp) execute(flags *pflag.FlagSet, positionals []string) error {
	if len(positionals) > 1 {
		return errors.New("at most one source directory may be given")
	}
	var source string
	if len(positionals) == 1 {
		source = positionals[0]
	}
	s, err := app.prepare(flags, source)
	if err != nil {
		return err
	}
	tree, err := buildTree(s.root, s.cfg, app.stderr)
	if err != nil {
		return err
	}
	return app.renderModules(tree, s.cfg, s.b, s.dest)
}

func (app *cliApp) show(flags *pflag.FlagSet, name, source string) error {
	s, err := app.prepare(flags, source)
	if err != nil {
		return err
	}
	tree, err := buildTree(s.root, s.cfg, app.stderr)
	if err != nil {
		return err
	}
	p, err := tree.lookup(name)
	if err != nil {
		return err
	}
	p.Render(app.stdout, tree.ctx, s.b, s.cfg.Recursive)
	return nil
}
