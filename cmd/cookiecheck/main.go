package main

import (
	"os"

	"github.com/ryanbekhen/cookie/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
