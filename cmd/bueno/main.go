package main

import (
	"os"

	"github.com/bueno-budget/bueno/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
