package main

import (
	"os"

	"github.com/govalues/fpdecimal/cmd/fpdcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
