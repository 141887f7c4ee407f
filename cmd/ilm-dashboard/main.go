package main

import (
	"fmt"
	"ilm-dashboard/cmd/ilm-dashboard/commands"
	"os"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
