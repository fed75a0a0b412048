package main

import (
	"os"

	"github.com/bimmerbailey/cssmin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
