package main

import (
	"os"

	"github.com/fuelview/fuelview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
