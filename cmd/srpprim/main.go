package main

import (
	"os"

	"srpprim/cmd/srpprim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
