package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...any) {})); err != nil {
		fmt.Fprintf(os.Stderr, "solguard: could not set GOMAXPROCS: %v\n", err)
	}

	if err := RootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
