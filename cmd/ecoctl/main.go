package main

import (
	"os"

	"github.com/ecolife/ecolife-api/internal/interface/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
