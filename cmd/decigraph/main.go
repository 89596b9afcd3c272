package main

import (
	"os"

	"github.com/katalvlaran/decigraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
