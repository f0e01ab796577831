package main

import (
	"os"

	"hatermatic/cmd/hatermatic/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
