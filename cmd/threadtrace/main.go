package main

import (
	"os"

	"github.com/illmade-knight/go-threadtrace/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
