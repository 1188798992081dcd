package main

import (
	"os"

	"github.com/thenoetrevino/jot/cmd"
	"github.com/thenoetrevino/jot/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
