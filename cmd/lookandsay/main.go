package main

import (
	"fmt"
	"os"

	"github.com/leonardcser/look-and-say/internal/cli"
	"github.com/leonardcser/look-and-say/internal/logger"
)

func main() {
	err := cli.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
