// logpuzzle - Apache log puzzle image extractor
//
// logpuzzle finds puzzle image requests in an access log, orders them and
// optionally downloads the images into a directory with a viewer page.
package main

import (
	"os"

	"github.com/ccollicutt/logpuzzle/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
