package main

import (
	"os"

	"github.com/Skotchmaster/kitchen_control/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
