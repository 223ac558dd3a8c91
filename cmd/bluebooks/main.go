package main

import (
	"os"

	"github.com/bluebooks-dev/bluebooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
