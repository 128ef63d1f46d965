package main

import (
	"os"

	"github.com/solatis/typedprops/cmd/typedprops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
