package main

import (
	"fmt"
	"os"

	"github.com/badele/ansirun/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], cli.StdStreams()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
