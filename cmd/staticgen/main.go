// Command staticgen builds a site's static JS/CSS/HTML assets: it
// expands `.comp`/`.comp.html` manifests, reduces and minifies script
// identifiers, and stamps the result with subresource-integrity hashes.
package main

import (
	"fmt"
	"os"

	"github.com/brinegen/staticgen/cmd/staticgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
