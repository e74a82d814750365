// filterargv prints the command-line arguments of the kinds selected by its flags.
package main

import (
	"os"

	"github.com/cardinalby/go-filter-argv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
