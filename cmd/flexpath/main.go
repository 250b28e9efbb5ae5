// Command flexpath manipulates file paths as text.
package main

import (
	"os"

	"github.com/meigma/flexpath/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
