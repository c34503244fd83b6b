package main

import (
	"os"

	"github.com/pfrederiksen/templepages/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
