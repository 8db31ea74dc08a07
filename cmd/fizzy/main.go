package main

import (
	"os"

	"github.com/alem0lars-svcuser/fizzy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
