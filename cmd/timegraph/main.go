// Command timegraph is the batch front-end for the timegraph module:
// it feeds the line-oriented routing and covering protocols from stdin
// (or a YAML network file) through the library cores.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
