package main

import (
	"os"

	"slidereel/cmd/slidereel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
