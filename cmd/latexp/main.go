package main

import (
	"os"

	"github.com/BrunoMiglioretto/Parser-Latex/cmd/latexp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
