package main

import (
	"errors"
	"fmt"
	"os"

	"freightqa/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(nil).Execute(); err != nil {
		if !errors.Is(err, cli.ErrInvalidRecords) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
