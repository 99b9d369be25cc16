package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/regatta/cmd"
	"github.com/thenoetrevino/regatta/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
