package main

import (
	"os"

	"github.com/aockit/aocgen/internal/aocgen"
)

func main() {
	os.Exit(aocgen.Main())
}
