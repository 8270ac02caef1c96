package main

import (
	"os"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/cmd/roulette/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
