package main

import (
	"os"

	"github.com/thenoetrevino/tablero/cmd"
	"github.com/thenoetrevino/tablero/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
