package main

import (
	"os"

	"github.com/BuunGroupCore/precast-app-sub003/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
