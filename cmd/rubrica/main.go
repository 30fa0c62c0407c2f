package main

import (
	"os"

	"github.com/jask/rubrica/cmd/rubrica/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
