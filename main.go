package main

import (
	"io"
	"os"

	"github.com/agentflare-ai/go-docmat/internal/notify"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes the fatal error line shown before a non-zero exit.
func reportError(w io.Writer, err error) {
	notify.Errorf(w, "docmat: %v", err)
}
