package main

import (
	"os"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()

	// Commands own their error output (SilenceErrors); main only maps the
	// returned error to an exit code.
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
