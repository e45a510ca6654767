package main

import (
	"os"

	"github.com/rustyeddy/ratewatch/cmd/ratewatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
