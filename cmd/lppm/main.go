package main

import (
	"os"

	"github.com/arthur-debert/lppm/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
