// Command todo manages a todo list kept as a Markdown checklist.
package main

import (
	"context"
	"os"

	"github.com/idilsaglam/mdtodo/internal/cli"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	os.Exit(cli.Run(context.Background(), info, os.Args[1:], os.Stdout, os.Stderr))
}
