package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/shelf/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		// Commands render their own failures before returning an
		// ExitError. Anything else (flag parsing, unknown commands)
		// comes straight from cobra and has not been printed yet.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
