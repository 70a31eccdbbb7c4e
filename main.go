package main

import (
	"os"

	"github.com/dishalabs/disha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
