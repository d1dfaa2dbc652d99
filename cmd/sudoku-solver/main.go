package main

import (
	"os"

	"github.com/kmarr21/sudoku-solver/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
