package main

import (
	"os"

	"github.com/msto63/faultlab/cmd/faultlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
