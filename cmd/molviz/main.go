// Command molviz is the MolViz-Engine command-line interface.
package main

import (
	"os"

	"github.com/turtacn/MolViz-Engine/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
