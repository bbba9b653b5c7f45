package main

import (
	"os"

	"github.com/candigraph/candigraph/cmd/candigraph"
)

func main() {
	if err := candigraph.Execute(); err != nil {
		os.Exit(1)
	}
}
