package main

import (
	"os"

	"github.com/ternsecure/docsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
