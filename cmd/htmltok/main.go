package main

import (
	"os"

	"github.com/cwbudde/go-htmltok/cmd/htmltok/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
