package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/go-docmat/internal/builder"
)

const rootLongDesc = `
docmat extracts the leading comment block of every MATLAB file in a source tree
and renders it as Sphinx documentation, in reStructuredText or MyST Markdown.

Each directory becomes a package page written to <dest>/api/<package.id><suffix>,
listing its sub-packages, classes and functions. "See also" lines are turned into
cross-references resolved across the whole tree; unknown names are reported on
stderr and rendered as plain function references.

Directories named "private" or ending in "@" are skipped, as are files whose
description line mentions "private".

Settings are read from docmat.yaml in the source directory, then from DOCMAT_*
environment variables, then from flags.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "docmat [flags] [source]",
		Short:         "Render MATLAB header comments as Sphinx documentation",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.opts.configPath, "config", "", "config file (default: <source>/docmat.yaml)")
	pf.StringP("format", "f", "rst", "markup dialect: "+strings.Join(builder.Names(), ", "))
	pf.String("root", "atmat", "directory to scan, relative to the source directory")
	pf.String("dest", "docs/m", "output directory, relative to the source directory")
	pf.StringSliceP("module", "m", nil, "top-level module to render (repeatable, default: the Accelerator Toolbox modules)")
	pf.Bool("recursive", true, "descend into sub-packages")
	pf.String("script-failure", "abort", "on a private script header: abort the directory or skip the file")
	pf.String("ignore-file", ".docmatignore", "gitignore-style exclusions, relative to the scan root")
	pf.Bool("no-color", false, "disable colored diagnostics")
	pf.BoolVarP(&app.opts.verbose, "verbose", "v", false, "report every written file")

	cmd.Flags().BoolVar(&app.opts.toStdout, "stdout", false, "write all pages to stdout instead of files")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return builder.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("script-failure", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"abort", "skip"}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(cmd.Flags(), args)
	}

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newShowCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <package> [source]",
		Short: "Render one package page to stdout",
		Long: strings.TrimSpace(`
Build the whole tree, then render the page of a single package, looked up by
directory name at any depth.

Example:

  docmat show atplot ~/src/at --format myst
`),
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		source := ""
		if len(args) == 2 {
			source = args[1]
		}
		return app.show(cmd.Flags(), args[0], source)
	}
	return cmd
}

// completionShells maps a shell name to its cobra script generator.
var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func shellNames() []string {
	names := make([]string, 0, len(completionShells))
	for name := range completionShells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: strings.TrimSpace(`
Print a completion script for docmat. Flag values such as --format and
--script-failure complete too.

  docmat completion bash > /usr/local/etc/bash_completion.d/docmat
  docmat completion zsh > "${fpath[1]}/_docmat"
  docmat completion fish | source
  docmat completion powershell | Out-String | Invoke-Expression
`),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             shellNames(),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		gen, ok := completionShells[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q (want one of %s)", args[0], strings.Join(shellNames(), ", "))
		}
		return gen(root, cmd.OutOrStdout())
	}
	return cmd
}

// newDocsCmd writes the reference of the docmat CLI itself, as one
// Markdown file (or man page) per command.
func newDocsCmd(root *cobra.Command) *cobra.Command {
	var man bool
	cmd := &cobra.Command{
		Use:   "gen-docs <directory>",
		Short: "Generate reference docs for the CLI",
		Long: strings.TrimSpace(`
Write one page per docmat command into the directory, as Markdown by default
or as man pages with --man.

  docmat gen-docs ./docs/cli
  docmat gen-docs --man ./man/man1
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&man, "man", false, "write man pages instead of Markdown")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", target, err)
		}
		if man {
			header := &cobradoc.GenManHeader{Title: "DOCMAT", Section: "1", Source: "docmat " + Version}
			return cobradoc.GenManTree(root, header, target)
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
