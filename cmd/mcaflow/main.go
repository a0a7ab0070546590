package main

import (
	"os"

	"github.com/mcaflow-dev/mcaflow/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
