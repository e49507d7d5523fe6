// Package main is the entry point for the bathpack CLI.
package main

import (
	"os"

	"github.com/sorenmortensen/bathpack/cmd/bathpack/commands"
	"github.com/sorenmortensen/bathpack/internal/errors"
)

func main() {
	err := commands.Execute()
	os.Exit(errors.ExitCode(err))
}
