package main

import (
	"os"

	"github.com/Amor-Self-learning/docview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
