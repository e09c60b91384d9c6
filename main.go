package main

import (
	"os"

	"github.com/deadfoxygrandpa/phybas-graviz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
