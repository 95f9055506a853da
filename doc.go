// # docmat
//
// `docmat` turns the header comments of a MATLAB source tree into Sphinx
// documentation. Every directory becomes a package page and every documented
// `.m` file becomes a Python-domain directive, so the toolbox can be browsed
// and cross-referenced like any Sphinx project.
//
// Key capabilities:
//
//   - read the leading `%` comment block of each function, class and script,
//     including functions whose signature spans several lines.
//   - emphasize the lines that call the documented function and lift its
//     argument list into the directive signature.
//   - resolve "See also" lines into `:func:` and `:class:` references across
//     the whole tree, warning about names that do not exist.
//   - render reStructuredText (`rst`) or MyST Markdown (`myst`, `md`).
//   - skip `private` directories, class folders ending in `@`, files whose
//     description mentions "private", and anything listed in `.docmatignore`.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	docmat [flags] [source]
//
// The source directory defaults to the current directory. The tree below
// `<source>/<root>` is scanned and one page per package is written to
// `<source>/<dest>/api/<package.id>.rst` (or `.md`).
//
// Examples:
//
//   - Render the default Accelerator Toolbox modules:
//
//     docmat ~/src/at
//
//   - Render a single module as MyST to stdout:
//
//     docmat --stdout -f myst -m atphysics ~/src/at
//
//   - Print the page of one nested package:
//
//     docmat show Radiation ~/src/at
//
// ## Supported Flags
//
//   - `-f, --format`: markup dialect, `rst` (default), `myst` or `md`.
//   - `--root`: directory to scan, relative to the source (default `atmat`).
//   - `--dest`: output directory, relative to the source (default `docs/m`).
//   - `-m, --module`: top-level module to render; repeatable. The files
//     directly inside the scan root form a module named after it.
//   - `--stdout`: write every page to stdout instead of files.
//   - `--recursive`: descend into sub-packages (default true).
//   - `--script-failure`: `abort` stops reading a directory at the first
//     private script header; `skip` only skips that script.
//   - `--ignore-file`: gitignore-style exclusions, relative to the scan root.
//   - `--config`: explicit configuration file.
//   - `--no-color`: plain diagnostics.
//   - `-v, --verbose`: report every written page.
//
// ## Configuration
//
// Settings are layered, later sources winning: built-in defaults,
// `docmat.yaml` in the source directory, `DOCMAT_*` environment variables
// (for example `DOCMAT_FORMAT=myst`), then flags.
//
//	root: atmat
//	dest: docs/m
//	format: rst
//	modules: [atphysics, atplot]
//	script_failure: skip
//
// ## Shell Completion
//
//	docmat completion bash        # bash
//	docmat completion zsh         # zsh
//	docmat completion fish | source
//	docmat completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `gen-docs` writes a Markdown file per command into the given directory:
//
//	docmat gen-docs ./docs/cli
package main
