// Command nest is the CLI front end for the nesting engine: load a
// job file, run the configured selector, and optionally emit SVG.
package main

import "github.com/MeKo-Christian/nest2d/cmd/nest/cmd"

func main() {
	cmd.Execute()
}
